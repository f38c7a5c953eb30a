package handlers

type legalSection struct {
	Heading string
	Body    string
}

type legalView struct {
	Meta     pageMeta
	Heading  string
	Sections []legalSection
}

var termsSections = []legalSection{
	{
		Heading: "1. Acceptance of Terms",
		Body:    "By accessing and using NextLearn, you agree to be bound by these Terms of Service and all applicable laws and regulations. If you do not agree with any of these terms, you are prohibited from using or accessing this site.",
	},
	{
		Heading: "2. Use License",
		Body:    "Permission is granted to temporarily access the materials (courses, content, etc.) on NextLearn for personal, non-commercial transitory viewing only. This is the grant of a license, not a transfer of title.",
	},
	{
		Heading: "3. User Account",
		Body:    "To access certain features of NextLearn, you may be required to create an account. You are responsible for maintaining the confidentiality of your account information and for all activities that occur under your account.",
	},
	{
		Heading: "4. Course Content",
		Body:    "All course content provided on NextLearn is for educational purposes only. We reserve the right to modify, update, or remove any content at any time without notice.",
	},
	{
		Heading: "5. Disclaimer",
		Body:    "The materials on NextLearn are provided on an 'as is' basis. NextLearn makes no warranties, expressed or implied, and hereby disclaims and negates all other warranties including, without limitation, implied warranties or conditions of merchantability, fitness for a particular purpose, or non-infringement of intellectual property or other violation of rights.",
	},
}

var privacySections = []legalSection{
	{
		Heading: "1. Information We Collect",
		Body:    "We collect information that you provide directly to us, including but not limited to your name, email address, and any other information you choose to provide when creating an account or using our services.",
	},
	{
		Heading: "2. How We Use Your Information",
		Body:    "We use the information we collect to provide, maintain, and improve our services, to communicate with you, and to personalize your learning experience.",
	},
	{
		Heading: "3. Information Sharing",
		Body:    "We do not share your personal information with third parties except as described in this privacy policy. We may share your information with service providers who assist us in operating our website and conducting our business.",
	},
	{
		Heading: "4. Data Security",
		Body:    "We implement appropriate technical and organizational measures to protect your personal information against unauthorized or unlawful processing, accidental loss, destruction, or damage.",
	},
	{
		Heading: "5. Your Rights",
		Body:    "You have the right to access, correct, or delete your personal information. You can also object to the processing of your personal information or request that we restrict the processing of your personal information.",
	},
}
