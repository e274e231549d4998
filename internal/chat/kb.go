package chat

// Entry is one knowledge-base topic: trigger phrases plus the canned answer.
type Entry struct {
	Topic    string
	Patterns []string
	Response string
}

func knowledgeBase() []Entry {
	return []Entry{
		{
			Topic:    "greeting",
			Patterns: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "howdy", "greetings"},
			Response: "Hello! I'm the InternGuard assistant. I can help you spot red flags in job offers, " +
				"verify recruiter emails, understand scam tactics and check suspicious URLs. " +
				"What would you like help with today?",
		},
		{
			Topic:    "capabilities",
			Patterns: []string{"what can you do", "help", "capabilities", "features", "what do you do", "how can you help"},
			Response: "I can help with scam detection (identifying fake internship postings), email verification " +
				"(spotting suspicious recruiter contacts), URL analysis (checking if a company website is legitimate), " +
				"fee warnings (any internship asking for money is a scam) and red-flag education. " +
				"Ask me about any internship concern.",
		},
		{
			Topic:    "fees",
			Patterns: []string{"registration fee", "pay fee", "charging fee", "asking money", "upfront fee", "deposit", "pay to apply", "security deposit", "training fee"},
			Response: "This is almost certainly a SCAM. Legitimate companies never charge candidates money to apply, " +
				"get selected or start an internship. Common fee scams: \"registration fee\" (Rs 500 to 5,000), " +
				"\"training material\" charges, \"security deposit\" requests, \"ID verification\" fees. " +
				"Rule of thumb: if they ask for money, walk away immediately and report it.",
		},
		{
			Topic:    "guarantees",
			Patterns: []string{"guaranteed placement", "guaranteed job", "100% placement", "guaranteed offer", "guaranteed internship"},
			Response: "\"Guaranteed\" is a major red flag. No legitimate company can guarantee a job or internship " +
				"before reviewing your skills. Scammers use it to lower your guard, justify fees and create pressure " +
				"to act fast. Always verify the company on LinkedIn or Glassdoor before proceeding.",
		},
		{
			Topic:    "documents",
			Patterns: []string{"aadhaar", "pan card", "bank account", "bank details", "personal details", "sensitive information", "ssn", "passport"},
			Response: "STOP. Do not share these documents. Legitimate recruiters never ask for Aadhaar, PAN or banking " +
				"details during the application stage; this is identity theft in disguise. Refuse to share government IDs, " +
				"verify the company on LinkedIn, call the company's official number and report the recruiter. " +
				"Real companies only ask for documents after a formal offer letter is signed.",
		},
		{
			Topic:    "free email",
			Patterns: []string{"gmail", "yahoo", "hotmail", "outlook", "free email", "work from home email", "recruiter email"},
			Response: "Suspicious email domain. Legitimate company recruiters use official company email addresses " +
				"(hr@company.com), never free providers like Gmail or Yahoo for corporate recruitment. " +
				"google.recruiter@gmail.com is fake; hr@infosys.com is likely real. " +
				"Always cross-reference the email domain with the official company website.",
		},
		{
			Topic:    "messaging apps",
			Patterns: []string{"whatsapp", "telegram", "only on whatsapp", "message on telegram", "chat on whatsapp"},
			Response: "WhatsApp/Telegram-only contact is suspicious. Real companies use official email, phone and HR " +
				"portals. A recruiter who insists on messaging apps avoids leaving an official trail, may be " +
				"impersonating a real company and can disappear without accountability. " +
				"Insist on an official email address or phone number you can verify.",
		},
		{
			Topic:    "url safety",
			Patterns: []string{"url", "website", "link", "check website", "verify website", "suspicious link", "company url"},
			Response: "URL safety checklist. Good signs: HTTPS and an official domain (company.com, not company-jobs.net). " +
				"Bad signs: raw IP addresses (http://192.168.1.1/apply), excessive hyphens " +
				"(google-internship-official.com), URL shorteners (bit.ly, t.co) and suspicious TLDs " +
				"(.xyz, .tk, .click) for corporate sites. Run the analyzer on any URL to scan it automatically.",
		},
		{
			Topic:    "verification",
			Patterns: []string{"how to verify", "verify company", "check company", "is this real", "is this legit", "verify offer", "how to check"},
			Response: "Six-step verification guide: 1) Google the company and check reviews on Glassdoor and AmbitionBox. " +
				"2) Find the recruiter's official LinkedIn profile. 3) Find the careers page independently on the " +
				"official website. 4) Call the company using the number from their official site. 5) Check that the " +
				"recruiter email matches the company domain. 6) Run the posting through the analyzer for an instant " +
				"risk score. When in doubt, trust your instincts.",
		},
		{
			Topic:    "salary",
			Patterns: []string{"high salary", "unrealistic salary", "too much money", "earn from home", "work from home earn", "lakh per month", "crore", "50000 per month", "high pay"},
			Response: "Unrealistic salary is a major red flag. Entry-level internships in India typically pay: tier-1 " +
				"companies Rs 15,000-60,000/month, startups Rs 5,000-20,000/month, work-from-home roles " +
				"Rs 3,000-15,000/month. An \"internship\" promising Rs 50,000+ per month for freshers with no " +
				"experience is almost certainly bait for personal data or registration fees.",
		},
		{
			Topic:    "urgency",
			Patterns: []string{"urgent", "apply now", "limited seats", "hurry", "deadline today", "act fast", "last chance", "few seats left"},
			Response: "Artificial urgency is a classic scam tactic. Phrases like \"only 2 seats left\", \"offer expires " +
				"in 24 hours\" and \"apply NOW\" are designed to short-circuit your critical thinking. Real companies " +
				"have structured hiring timelines and won't pressure you to decide instantly. " +
				"When you see urgency, slow down and verify more carefully.",
		},
		{
			Topic:    "red flags",
			Patterns: []string{"red flags", "warning signs", "scam signs", "how to spot", "identify scam", "scam indicators"},
			Response: "Top 10 internship scam red flags: 1) asking for any kind of fee, 2) free email address, " +
				"3) \"guaranteed\" placement, 4) unrealistically high pay, 5) requesting Aadhaar/PAN/bank details, " +
				"6) extreme urgency, 7) WhatsApp/Telegram-only contact, 8) suspicious or unofficial website, " +
				"9) vague job description, 10) unverifiable company name.",
		},
		{
			Topic:    "reporting",
			Patterns: []string{"report scam", "how to report", "where to report", "complain", "file complaint"},
			Response: "How to report internship scams in India: the National Cybercrime Portal at cybercrime.gov.in, " +
				"the cybercrime helpline 1930 (24/7), the \"Report Job\" button on Naukri, LinkedIn and Internshala, " +
				"or an FIR at your nearest cyber cell. Every report protects future victims.",
		},
		{
			Topic:    "portals",
			Patterns: []string{"internshala", "naukri", "linkedin", "indeed", "job portal", "safe job portal", "trusted portal"},
			Response: "Trusted internship platforms: Internshala (verified companies, best for students in India), " +
				"LinkedIn (verify the recruiter profile and company page), Naukri (use the verified-company filter), " +
				"AngelList/Wellfound (startup internships) and Unstop. Even on trusted platforms scammers exist, " +
				"so always verify the recruiter and company independently.",
		},
		{
			Topic:    "risk score",
			Patterns: []string{"risk score", "score", "what is risk score", "how is score calculated", "score meaning"},
			Response: "Postings are scored 0 to 100: 0-30 SAFE (low risk, likely legitimate), 31-60 SUSPICIOUS " +
				"(proceed with caution, verify carefully), 61-100 SCAM (high probability of fraud, avoid). " +
				"The score combines five modules: keyword scanning, URL analysis, email verification, " +
				"text pattern analysis and composite scoring.",
		},
		{
			Topic:    "thanks",
			Patterns: []string{"thank you", "thanks", "thank u", "thx", "appreciate", "helpful"},
			Response: "Glad I could help. Stay vigilant, scammers keep evolving their tactics, and when in doubt run the " +
				"posting through the analyzer before applying. Good luck with your internship search!",
		},
		{
			Topic:    "goodbye",
			Patterns: []string{"bye", "goodbye", "see you", "later", "exit"},
			Response: "Take care and stay scam-free. If you ever get a suspicious internship offer, come back and verify " +
				"it here. Good luck with your internship hunt!",
		},
		{
			Topic:    "analyze",
			Patterns: []string{"analyze", "scan", "check posting", "analyze posting", "scan posting"},
			Response: "To analyze a posting: paste the internship text, optionally add the recruiter's email and company " +
				"URL, and submit it to the analyzer. You get an instant 0-100 risk score with a detailed breakdown of " +
				"every flag detected.",
		},
	}
}

func fallbackResponses() []string {
	return []string{
		"I'm not sure I understand that completely, but I'm here to help with internship scam detection. " +
			"Try asking about red flags to watch out for, how to verify recruiter emails, checking suspicious URLs, " +
			"or what to do if they ask for money.",
		"That's outside my expertise, but I specialize in internship scam detection. I can help with identifying " +
			"scam tactics, verifying companies and recruiters, understanding risk scores and reporting fraudulent offers.",
		"I'd love to help more specifically. Try rephrasing your question, or ask me about common internship scam " +
			"warning signs, email verification, or how the analyzer works.",
	}
}
