package rules

import "regexp"

// ScamDB is the static known-scam lookup table. Domains and company keywords
// match by substring containment; emails match by regex.
type ScamDB struct {
	Domains         []string
	CompanyKeywords []string
	EmailPatterns   []*regexp.Regexp
}

func defaultScamDB() ScamDB {
	return ScamDB{
		Domains: []string{
			"internship-jobs.in", "freejobalert.co", "jobsalerthub.com", "earnmoney24.in",
			"jobsarkari.net", "indiajobportal.co", "quickjobs.co.in", "jobseekers.co.in",
			"hiringnow.co.in", "jobs4fresher.com", "topjobsportal.com", "careerguru.in",
			"fastjobs.co.in", "workfromhomejobs.in", "jobsinjaipur.co.in", "jobs-alert.in",
			"naukri-alert.com", "jobduniya.co.in", "sarkarijobsalert.co.in", "jobshub.in",
			"onlineearnmoneyindia.com", "workathomeguide.in", "earnathome.co.in", "mlmjob.in",
			"govtjobsalert.org", "sarkariresult-alert.in", "jobportal123.com", "hireme.co.in",
			"internship4u.in", "internstore.in", "getinternship.co.in", "fakecompany.xyz",
		},
		CompanyKeywords: []string{
			"topmncgroup", "hirehubsolutions", "staffingindia", "recruitprosolutions",
			"globalrecruitment", "elitejobssolution", "professionaljobshub", "instantplacementhub",
			"careerpathwaysindia", "smartjobsolutions", "workfromhomepvtltd", "earnfastindia",
		},
		EmailPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)hr\.india@`),
			regexp.MustCompile(`(?i)jobs@.*\.xyz`),
			regexp.MustCompile(`(?i)recruit@.*\.tk`),
			regexp.MustCompile(`(?i)internship@.*gmail`),
			regexp.MustCompile(`(?i)career@.*yahoo`),
			regexp.MustCompile(`(?i)placement@.*hotmail`),
		},
	}
}
