package reputation

// SeedRecords returns the curated scam database the engine ships with. The
// returned slice is fresh on every call; callers may mutate their copy.
func SeedRecords() []ScamRecord {
	return []ScamRecord{
		{
			ID:              "sc001",
			CompanyName:     "TechVision Pvt Ltd",
			Domain:          "techvision-internships.com",
			RecruiterEmails: []string{"hr@techvision-internships.com", "recruiter.techvision@gmail.com"},
			Phones:          []string{"9876543210", "8765432109"},
			UPIIDs:          []string{"techvision.hr@paytm", "tv.hrpay@okaxis"},
			DomainAgeDays:   intPtr(18),
			PsychManipulation: true,
			Reports: []Report{
				{Date: "2026-02-20", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "fake_offer_letter", "upi_transfer"}, Credibility: 0.9},
				{Date: "2026-02-21", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "impersonation"}, Credibility: 0.85},
				{Date: "2026-02-22", Verified: false, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.5},
				{Date: "2026-02-23", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "aadhaar_request"}, Credibility: 0.88},
				{Date: "2026-02-24", Verified: false, ProofUploaded: false, Flags: []string{"urgency_pressure"}, Credibility: 0.4},
				{Date: "2026-02-25", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "fake_offer_letter"}, Credibility: 0.92},
				{Date: "2026-02-26", Verified: true, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.75},
				{Date: "2026-02-27", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "upi_transfer"}, Credibility: 0.95},
			},
			Cluster: "cluster_upi_paytm_01",
		},
		{
			ID:              "sc002",
			CompanyName:     "NextGen Career Hub",
			Domain:          "nextgencareerhub.in",
			RecruiterEmails: []string{"jobs@nextgencareerhub.in", "ngcareers@gmail.com"},
			Phones:          []string{"7654321098"},
			UPIIDs:          []string{"ngcareers@paytm"},
			DomainAgeDays:   intPtr(45),
			PsychManipulation: true,
			Reports: []Report{
				{Date: "2026-01-15", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "impersonation"}, Credibility: 0.9},
				{Date: "2026-01-18", Verified: false, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.5},
				{Date: "2026-01-22", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "fake_offer_letter"}, Credibility: 0.85},
				{Date: "2026-02-01", Verified: true, ProofUploaded: false, Flags: []string{"aadhaar_request"}, Credibility: 0.7},
				{Date: "2026-02-10", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment"}, Credibility: 0.88},
			},
			Cluster: "cluster_upi_paytm_01",
		},
		{
			ID:              "sc003",
			CompanyName:     "Global IT Solutions LLP",
			Domain:          "globalitsolutions-careers.co",
			RecruiterEmails: []string{"career@globalitsolutions-careers.co", "globalit.hire@gmail.com"},
			Phones:          []string{"9988776655", "8811223344"},
			UPIIDs:          []string{"globalit.careers@ybl"},
			DomainAgeDays:   intPtr(12),
			PsychManipulation: true,
			Reports: []Report{
				{Date: "2026-02-24", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "upi_transfer", "fake_offer_letter"}, Credibility: 0.95},
				{Date: "2026-02-25", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment"}, Credibility: 0.9},
				{Date: "2026-02-25", Verified: false, ProofUploaded: false, Flags: []string{"urgency_pressure"}, Credibility: 0.45},
				{Date: "2026-02-26", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "impersonation"}, Credibility: 0.88},
				{Date: "2026-02-27", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "aadhaar_request"}, Credibility: 0.92},
				{Date: "2026-02-27", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment"}, Credibility: 0.85},
				{Date: "2026-02-28", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "upi_transfer"}, Credibility: 0.97},
			},
			Cluster: "cluster_domain_new_01",
		},
		{
			ID:              "sc004",
			CompanyName:     "SkillUp Pro Academy",
			Domain:          "skilluppro-internship.xyz",
			RecruiterEmails: []string{"intern@skilluppro-internship.xyz"},
			Phones:          []string{"6543210987"},
			UPIIDs:          []string{"skilluppay@okicici"},
			DomainAgeDays:   intPtr(22),
			Reports: []Report{
				{Date: "2026-02-15", Verified: true, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.7},
				{Date: "2026-02-16", Verified: false, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.4},
				{Date: "2026-02-18", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "upi_transfer"}, Credibility: 0.85},
			},
			Cluster: "cluster_domain_xyz_01",
		},
		{
			ID:              "sc005",
			CompanyName:     "FutureTech Internships",
			Domain:          "futuretechinternship.online",
			RecruiterEmails: []string{"apply@futuretechinternship.online", "futuretech.hr@gmail.com"},
			Phones:          []string{"9123456780"},
			UPIIDs:          []string{"futuretech@paytm"},
			DomainAgeDays:   intPtr(8),
			PsychManipulation: true,
			Reports: []Report{
				{Date: "2026-02-26", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "fake_offer_letter", "upi_transfer"}, Credibility: 0.95},
				{Date: "2026-02-27", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment", "impersonation"}, Credibility: 0.9},
				{Date: "2026-02-28", Verified: true, ProofUploaded: true, Flags: []string{"upfront_payment"}, Credibility: 0.88},
			},
			Cluster: "cluster_domain_new_01",
		},
		{
			ID:              "sc006",
			CompanyName:     "InfoSys Career Bridge",
			Domain:          "infosys-careerbridge.com",
			RecruiterEmails: []string{"info@infosys-careerbridge.com"},
			Phones:          []string{"8899001122"},
			UPIIDs:          []string{"isysbridge@ybl"},
			DomainAgeDays:   intPtr(60),
			Reports: []Report{
				{Date: "2026-01-05", Verified: true, ProofUploaded: true, Flags: []string{"impersonation", "fake_offer_letter"}, Credibility: 0.9},
				{Date: "2026-01-07", Verified: true, ProofUploaded: false, Flags: []string{"impersonation"}, Credibility: 0.75},
				{Date: "2026-01-10", Verified: false, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.5},
			},
			Cluster: "cluster_impersonation_01",
		},
		{
			ID:              "sc007",
			CompanyName:     "TCS Talent Connect",
			Domain:          "tcs-talentconnect.net",
			RecruiterEmails: []string{"hr@tcs-talentconnect.net", "tcstalent@gmail.com"},
			Phones:          []string{"7788990011"},
			UPIIDs:          []string{"tcshiring@okhdfc"},
			DomainAgeDays:   intPtr(35),
			PsychManipulation: true,
			Reports: []Report{
				{Date: "2026-02-10", Verified: true, ProofUploaded: true, Flags: []string{"impersonation", "upfront_payment"}, Credibility: 0.92},
				{Date: "2026-02-12", Verified: true, ProofUploaded: true, Flags: []string{"impersonation", "fake_offer_letter"}, Credibility: 0.88},
				{Date: "2026-02-14", Verified: false, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.45},
				{Date: "2026-02-20", Verified: true, ProofUploaded: false, Flags: []string{"urgency_pressure"}, Credibility: 0.7},
			},
			Cluster: "cluster_impersonation_01",
		},
		{
			ID:              "sc008",
			CompanyName:     "Digital Dream Internship Hub",
			Domain:          "digitaldream-internhub.in",
			RecruiterEmails: []string{"contact@digitaldream-internhub.in"},
			Phones:          []string{"9000111222"},
			UPIIDs:          []string{"ddhub@paytm"},
			DomainAgeDays:   intPtr(90),
			Reports: []Report{
				{Date: "2026-01-20", Verified: false, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.45},
				{Date: "2026-01-25", Verified: false, ProofUploaded: false, Flags: []string{"upfront_payment"}, Credibility: 0.4},
			},
		},
	}
}
