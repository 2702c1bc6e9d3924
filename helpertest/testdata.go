package helpertest

// SuffixList is an excerpt of the Public Suffix List covering
// normal, wildcard, exception, private and IDN rules.
const SuffixList = `// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0.

// ===BEGIN ICANN DOMAINS===

// ac : https://en.wikipedia.org/wiki/.ac
ac
com.ac
edu.ac

// biz : https://en.wikipedia.org/wiki/.biz
biz

// bd : https://en.wikipedia.org/wiki/.bd
*.bd

// ck : https://en.wikipedia.org/wiki/.ck
*.ck
!www.ck

// cn : https://en.wikipedia.org/wiki/.cn
cn
ac.cn
com.cn
公司.cn
网络.cn

// com : https://en.wikipedia.org/wiki/.com
com

// jp : https://en.wikipedia.org/wiki/.jp
jp
ac.jp
co.jp
kyoto.jp
ide.kyoto.jp
*.kobe.jp
!city.kobe.jp
*.kawasaki.jp
!city.kawasaki.jp

// uk : https://en.wikipedia.org/wiki/.uk
uk
ac.uk
co.uk

// us : https://en.wikipedia.org/wiki/.us
us
ak.us
k12.ak.us

// xn--fiqs8s ("Zhongguo/China", Chinese, Simplified) : CN
中国

// ===END ICANN DOMAINS===
// ===BEGIN PRIVATE DOMAINS===

// CentralNic : http://www.centralnic.com/
uk.com
us.com

// GitHub, Inc.
github.io

// ===END PRIVATE DOMAINS===
`

const (
	// SuffixListRuleCount is the number of rules in `SuffixList`.
	SuffixListRuleCount = 32

	// SuffixListPrivateRuleCount is the number of rules in the private section of `SuffixList`.
	SuffixListPrivateRuleCount = 3
)
