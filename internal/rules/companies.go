package rules

import "regexp"

// CompanyPattern flags a suspicious-looking company name.
type CompanyPattern struct {
	Pattern *regexp.Regexp
	Weight  int // 5-30
	Label   string
}

func cp(expr string, weight int, label string) CompanyPattern {
	return CompanyPattern{Pattern: regexp.MustCompile(`(?i)` + expr), Weight: weight, Label: label}
}

func defaultSuspiciousCompanyPatterns() []CompanyPattern {
	return []CompanyPattern{
		cp(`\b(top|best|prime|elite|global|international|world|super|mega|ultra|ultimate)\s+(mnc|corp|solutions|services|pvt|india|jobs|career|hr|hiring|placement|recruit)\b`, 15, "Generic fake MNC name pattern"),
		cp(`\b(fast|quick|easy|instant|guaranteed|assured)\s*(job|hire|career|placement|intern)`, 18, "Guaranteed placement company name"),
		cp(`\b(earn|money|income|profit|cash)\s*(fast|quick|easy|online|home|work)`, 20, "MLM/money scheme company name"),
		cp(`pvt\.?\s*ltd\.?\s*group|group\s+of\s+companies`, 5, "Vague company suffix"),
		cp(`\b(hr|jobs|career|recruit|placement|staffing)\s+(india|hub|zone|center|centre|point|pro|plus|solutions|pvt)\b`, 12, "Generic HR agency name"),
		cp(`\b(work\s*from\s*home|wfh|remote)\s+(pvt|corp|solutions|services|india)`, 18, "Work-from-home scheme company"),
		cp(`^[A-Z]{4,8}\s+(pvt|ltd|solutions|services|corp)`, 10, "Suspicious acronym-only company name"),
		cp(`\b(infosys|tcs|wipro|accenture|amazon|google|microsoft|apple|fb|meta|flipkart)\s*[0-9a-z]*\s*(india|pvt|global|solutions|hr|jobs|careers|services)`, 22, "Possible brand name impersonation"),
		cp(`\b(fake|scam|fraud|illegal|bogus)\b`, 30, "Explicit suspicious word in name"),
	}
}

// Names are stored lowercased; matching is substring in either direction
// after the candidate name is normalized the same way.
func defaultVerifiedCompanies() []string {
	return []string{
		"infosys", "tcs", "tata consultancy services", "wipro", "hcl", "hcl technologies",
		"tech mahindra", "accenture", "ibm", "microsoft", "google", "amazon", "amazon web services",
		"meta", "apple", "samsung", "oracle", "sap", "cisco", "intel", "qualcomm", "dell",
		"hp", "hewlett packard", "deloitte", "pwc", "pricewaterhousecoopers", "kpmg", "ey",
		"ernst young", "mckinsey", "bain", "bcg", "boston consulting", "capgemini", "cognizant",
		"epam", "mphasis", "hexaware", "l&t", "larsen toubro", "l&t infotech", "ltimindtree",
		"bajaj", "reliance", "reliance industries", "reliance jio", "ambuja", "adani", "vedanta",
		"aditya birla", "mahindra", "mahindra mahindra", "tata motors", "tata steel", "tata power",
		"hdfc", "hdfc bank", "icici", "icici bank", "sbi", "state bank", "axis bank", "kotak",
		"kotak mahindra", "yes bank", "bandhan bank", "idbi bank", "bank of baroda", "punjab national",
		"nestle", "unilever", "hindustan unilever", "procter gamble", "pg india", "colgate", "reckitt",
		"abbott", "cipla", "sun pharma", "dr reddy", "drl", "lupin", "biocon", "zydus", "cadila",
		"flipkart", "zomato", "swiggy", "byju", "byjus", "nykaa", "ola", "paytm", "phonepe",
		"infoedge", "naukri", "indeedindia", "freshworks", "zoho", "razorpay", "cred", "zerodha",
		"groww", "upstox", "lenskart", "oyo", "rapido", "urban company", "bigbasket", "meesho",
		"myntra", "ajio", "snapdeal", "indiamart", "justdial", "makemytrip", "goibibo", "cleartrip",
		"yatra", "airtel", "bharti airtel", "vodafone", "vodafone idea", "vi", "bsnl", "mtnl",
		"bhel", "ntpc", "ongc", "iocl", "indian oil", "hpcl", "bpcl", "gail", "sail", "nmdc",
		"coal india", "power grid", "rites", "ircon", "rvnl", "irctc", "indian railways",
		"hero motocorp", "bajaj auto", "tvs motor", "royal enfield", "eicher motors", "maruti",
		"maruti suzuki", "hyundai", "kia", "mercedes", "bmw", "audi", "toyota", "honda",
		"acko", "policybazaar", "icicilombard", "lici", "lic", "sbi life", "hdfc life",
		"mindtree", "persistentsystems", "persistent", "trent", "titan", "tanishq",
		"godrej", "igl", "indraprastha gas", "mahanagar gas", "gujarat gas", "petronet",
		"jubilantfoods", "jubilant", "dominos", "mcdonalds", "yum brands", "kfc india",
		"shoppers stop", "lifestyle", "pantaloons", "westside", "reliance retail", "dmart",
		"avenue supermarts", "spencer", "bigbazaar", "future group", "safari", "vip industries",
		"raymond", "arvind", "welspun", "vardhman", "texport", "page industries", "dollar",
		"mrf", "apollo tyres", "ceat", "jk tyre", "balkrishna", "balkrishna industries",
		"ultratech", "shree cement", "jk cement", "ramco", "grasim", "dalmia bharat",
		"asian paints", "berger paints", "nerolac", "indigo paints", "akzo",
		"pidilite", "fevicol", "m&m financial", "shriram transport", "bajaj finance",
		"muthoot", "manappuram", "iifl", "motilal oswal", "edelweiss", "jm financial",
		"nse", "bse", "cdsl", "nsdl", "sebi", "rbi", "irdai", "nabard", "sidbi",
		"infosys bpm", "wipro bps", "tcs bps", "igate", "syntel", "mastech", "niit",
		"aptech", "jetking", "manipal", "amity", "symbiosis", "vit", "srm", "lpu",
		"bloomberg", "reuters", "factset", "refinitiv", "morningstar", "moodys", "sp global",
		"bosch", "siemens", "abb", "schneider", "honeywell", "ge", "general electric",
		"philips", "emerson", "rockwell", "3m", "johnson controls", "carrier",
		"linkedin", "indeed", "glassdoor", "monster", "shine", "timesjobs", "hirist",
		"instahyre", "iimjobs", "angel broking", "angelone", "icici direct", "hdfc securities",
	}
}

// Domain suffix patterns for companies and institutions whose addresses can
// be trusted outright; the email analyzer passes these without penalties.
func defaultOfficialDomainPatterns() []*regexp.Regexp {
	exprs := []string{
		`\.gov\.in$`, `\.nic\.in$`, `\.edu\.in$`, `\.ac\.in$`, `\.org\.in$`,
		`infosys\.com$`, `wipro\.com$`, `tcs\.com$`, `hcltech\.com$`, `accenture\.com$`,
		`microsoft\.com$`, `google\.com$`, `amazon\.com$`, `ibm\.com$`, `oracle\.com$`,
		`deloitte\.com$`, `pwc\.com$`, `kpmg\.com$`, `ey\.com$`, `mckinsey\.com$`,
		`capgemini\.com$`, `cognizant\.com$`, `techmahindra\.com$`, `ltimindtree\.com$`,
	}
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}
