package rules

func defaultSuspiciousTLDs() []string {
	return []string{
		".xyz", ".tk", ".ml", ".ga", ".cf", ".gq", ".click", ".link",
		".top", ".pw", ".cc", ".ws", ".icu", ".monster", ".rest", ".bar",
	}
}

func defaultURLShorteners() []string {
	return []string{
		"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly", "is.gd",
		"buff.ly", "short.io", "rebrand.ly", "cutt.ly", "rb.gy",
		"shorte.st", "adf.ly",
	}
}

func defaultFreeEmailProviders() []string {
	return []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "ymail.com",
		"rediffmail.com", "protonmail.com", "live.com", "mail.com", "zohomail.com",
	}
}
