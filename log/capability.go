package log

import "github.com/sirupsen/logrus"

// Capability exposes a logrus entry through the three severities used by the
// suffix list: detail, warning and error.
type Capability struct {
	entry *logrus.Entry
}

// NewCapability wraps `entry`. A nil entry falls back to the global logger.
func NewCapability(entry *logrus.Entry) *Capability {
	if entry == nil {
		entry = logrus.NewEntry(Log())
	}

	return &Capability{entry: entry}
}

// Detail logs on debug level.
func (c *Capability) Detail(msg string) {
	c.entry.Debug(msg)
}

// Warning logs on warn level.
func (c *Capability) Warning(msg string) {
	c.entry.Warn(msg)
}

// Error logs on error level.
func (c *Capability) Error(msg string) {
	c.entry.Error(msg)
}

// Entry returns the wrapped entry.
func (c *Capability) Entry() *logrus.Entry {
	return c.entry
}
