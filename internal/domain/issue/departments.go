package issue

// categoryEntry bundles everything known about one issue category.
type categoryEntry struct {
	category       Category
	departments    []Department
	keywords       []keyword
	escalationPath []string
}

type keyword struct {
	phrase string
	weight float64
}

// dept builds a Department with the default 30-day response window.
func dept(name, level string) Department {
	return Department{Name: name, Level: level, ResponseDays: 30}
}

// categoryTable is the full routing table.  Keyword matching is plain
// substring search over lowercased input; weights reflect how strongly a
// phrase identifies the category.
var categoryTable = []categoryEntry{
	{
		category: CategoryElectricity,
		departments: []Department{
			{Name: "State Electricity Board", Level: "state", GrievancePortal: "https://www.pgportal.gov.in", ResponseDays: 30},
			dept("DISCOM (Distribution Company)", "state"),
			dept("Power Department", "state"),
			dept("Electrical Inspector", "district"),
		},
		keywords: []keyword{
			{"electricity", 0.3}, {"power", 0.2}, {"electric", 0.2},
			{"meter", 0.2}, {"billing", 0.15}, {"load shedding", 0.25},
			{"transformer", 0.2}, {"voltage", 0.2}, {"power cut", 0.25},
			{"blackout", 0.25}, {"current", 0.1}, {"wire", 0.1},
			{"connection", 0.15}, {"unit", 0.1}, {"tariff", 0.15},
			{"discom", 0.3}, {"electricity board", 0.3},
		},
		escalationPath: []string{
			"Junior Engineer → Executive Engineer → Superintending Engineer → Chief Engineer → CMD",
		},
	},
	{
		category: CategoryWater,
		departments: []Department{
			dept("Water Supply Department", "state"),
			dept("Jal Board", "state"),
			dept("Municipal Corporation Water Works", "local"),
			dept("Public Health Engineering Department (PHED)", "state"),
		},
		keywords: []keyword{
			{"water", 0.3}, {"water supply", 0.3}, {"pipeline", 0.25},
			{"sewage", 0.2}, {"drainage", 0.2}, {"tap", 0.15},
			{"borewell", 0.2}, {"tank", 0.1}, {"contaminated", 0.2},
			{"dirty water", 0.25}, {"no water", 0.25}, {"water tanker", 0.2},
			{"jal board", 0.3}, {"phed", 0.3}, {"water meter", 0.2},
		},
		escalationPath: []string{
			"AE Water → EE Water → SE Water → Chief Engineer → Secretary",
		},
	},
	{
		category: CategoryRoads,
		departments: []Department{
			dept("Public Works Department (PWD)", "state"),
			dept("Municipal Corporation Roads", "local"),
			dept("National Highway Authority of India (NHAI)", "central"),
			dept("State Highway Department", "state"),
		},
		keywords: []keyword{
			{"road", 0.3}, {"pothole", 0.3}, {"highway", 0.25},
			{"street", 0.2}, {"footpath", 0.2}, {"bridge", 0.2},
			{"flyover", 0.2}, {"construction", 0.15}, {"repair", 0.1},
			{"damaged road", 0.25}, {"broken road", 0.25}, {"street light", 0.2},
			{"pwd", 0.3}, {"nhai", 0.3}, {"pavement", 0.15},
		},
		escalationPath: []string{
			"AE PWD → EE PWD → SE PWD → Chief Engineer → Secretary PWD",
		},
	},
	{
		category: CategoryEducation,
		departments: []Department{
			dept("Department of School Education", "state"),
			dept("District Education Officer", "district"),
			dept("Block Education Officer", "block"),
			dept("University Grants Commission (UGC)", "central"),
		},
		keywords: []keyword{
			{"school", 0.3}, {"college", 0.25}, {"education", 0.25},
			{"admission", 0.2}, {"fees", 0.15}, {"certificate", 0.15},
			{"teacher", 0.2}, {"student", 0.1}, {"exam", 0.15},
			{"result", 0.15}, {"scholarship", 0.2}, {"hostel", 0.15},
			{"university", 0.25}, {"board exam", 0.25}, {"marksheet", 0.2},
			{"transfer certificate", 0.25}, {"tc", 0.2},
		},
		escalationPath: []string{
			"Principal → BEO → DEO → Director Education → Secretary Education",
		},
	},
	{
		category: CategoryHealth,
		departments: []Department{
			dept("Department of Health", "state"),
			dept("District Health Officer", "district"),
			dept("Chief Medical Officer (CMO)", "district"),
			dept("Hospital Administration", "local"),
		},
		keywords: []keyword{
			{"hospital", 0.3}, {"health", 0.25}, {"medical", 0.25},
			{"doctor", 0.2}, {"medicine", 0.2}, {"treatment", 0.2},
			{"clinic", 0.2}, {"phc", 0.25}, {"primary health center", 0.25},
			{"ambulance", 0.2}, {"emergency", 0.15}, {"patient", 0.1},
			{"nurse", 0.15}, {"surgery", 0.2}, {"blood", 0.1},
			{"vaccination", 0.2}, {"ayushman", 0.25},
		},
		escalationPath: []string{
			"Medical Officer → CMO → Director Health → Secretary Health",
		},
	},
	{
		category: CategoryPolice,
		departments: []Department{
			dept("Police Station", "local"),
			dept("SP/SSP Office", "district"),
			dept("Police Commissioner Office", "city"),
			dept("DGP Office", "state"),
		},
		keywords: []keyword{
			{"police", 0.3}, {"fir", 0.3}, {"crime", 0.25},
			{"theft", 0.25}, {"harassment", 0.2}, {"safety", 0.15},
			{"robbery", 0.25}, {"assault", 0.25}, {"cybercrime", 0.25},
			{"missing", 0.2}, {"violence", 0.2}, {"threat", 0.2},
			{"investigation", 0.2}, {"constable", 0.15}, {"station", 0.1},
			{"chargesheet", 0.2}, {"bail", 0.15},
		},
		escalationPath: []string{
			"SHO → Circle Officer → SP → IG → DGP",
		},
	},
	{
		category: CategoryLand,
		departments: []Department{
			dept("Revenue Department", "state"),
			dept("Tehsildar Office", "tehsil"),
			dept("Sub-Registrar Office", "district"),
			dept("Collector Office", "district"),
		},
		keywords: []keyword{
			{"land", 0.3}, {"property", 0.25}, {"registry", 0.25},
			{"mutation", 0.25}, {"encroachment", 0.25}, {"survey", 0.2},
			{"khasra", 0.25}, {"khatauni", 0.25}, {"jamabandi", 0.25},
			{"tehsil", 0.2}, {"patwari", 0.2}, {"circle rate", 0.2},
			{"stamp duty", 0.2}, {"deed", 0.2}, {"plot", 0.15},
			{"possession", 0.2}, {"fard", 0.2},
		},
		escalationPath: []string{
			"Patwari → Tehsildar → SDM → Collector → Revenue Secretary",
		},
	},
	{
		category: CategoryTransport,
		departments: []Department{
			dept("Regional Transport Office (RTO)", "district"),
			dept("Transport Department", "state"),
			dept("Traffic Police", "local"),
			dept("Motor Vehicle Department", "state"),
		},
		keywords: []keyword{
			{"vehicle", 0.25}, {"license", 0.25}, {"driving license", 0.3},
			{"registration", 0.2}, {"traffic", 0.2}, {"bus", 0.15},
			{"transport", 0.2}, {"rto", 0.3}, {"fitness", 0.2},
			{"permit", 0.2}, {"challan", 0.25}, {"rc", 0.25},
			{"pollution certificate", 0.25}, {"puc", 0.25}, {"insurance", 0.15},
			{"number plate", 0.2}, {"transfer", 0.15},
		},
		escalationPath: []string{
			"RTO → DTO → Transport Commissioner → Secretary Transport",
		},
	},
	{
		category: CategoryRation,
		departments: []Department{
			dept("Food & Civil Supplies Department", "state"),
			dept("PDS Office", "district"),
			dept("Fair Price Shop", "local"),
			dept("District Supply Officer", "district"),
		},
		keywords: []keyword{
			{"ration", 0.3}, {"pds", 0.3}, {"food", 0.15},
			{"fair price", 0.25}, {"ration card", 0.3}, {"aadhar", 0.1},
			{"kerosene", 0.2}, {"sugar", 0.1}, {"wheat", 0.1},
			{"rice", 0.1}, {"bpl", 0.25}, {"apl", 0.2},
			{"antyodaya", 0.25}, {"fps", 0.25},
		},
		escalationPath: []string{
			"FPS Dealer → Inspector → DSO → Director Food → Secretary",
		},
	},
	{
		category: CategoryPension,
		departments: []Department{
			dept("Pension Department", "state"),
			dept("Treasury Office", "district"),
			dept("AG Office", "state"),
			dept("Social Welfare (for social pensions)", "state"),
		},
		keywords: []keyword{
			{"pension", 0.3}, {"retirement", 0.25}, {"epf", 0.25},
			{"gratuity", 0.25}, {"ppo", 0.25}, {"old age pension", 0.3},
			{"widow pension", 0.3}, {"disability pension", 0.3},
			{"family pension", 0.25}, {"commutation", 0.2},
			{"treasury", 0.2}, {"arrears", 0.2},
		},
		escalationPath: []string{
			"Treasury Officer → Director Pension → AG → Secretary Finance",
		},
	},
	{
		category: CategoryMunicipal,
		departments: []Department{
			dept("Municipal Corporation", "city"),
			dept("Nagar Palika", "town"),
			dept("Nagar Panchayat", "town"),
			dept("Town Planning", "local"),
		},
		keywords: []keyword{
			{"municipal", 0.3}, {"corporation", 0.2}, {"garbage", 0.25},
			{"sanitation", 0.25}, {"building", 0.15}, {"house tax", 0.25},
			{"property tax", 0.25}, {"noc", 0.2}, {"building plan", 0.2},
			{"encroachment", 0.2}, {"demolition", 0.2}, {"birth certificate", 0.25},
			{"death certificate", 0.25}, {"trade license", 0.2},
			{"advertisement", 0.15}, {"parking", 0.15},
		},
		escalationPath: []string{
			"Ward Officer → Zonal Officer → Commissioner → Mayor",
		},
	},
	{
		category: CategoryTax,
		departments: []Department{
			dept("Income Tax Department", "central"),
			dept("GST Department", "central"),
			dept("Commercial Tax", "state"),
			dept("Stamp & Registration", "state"),
		},
		keywords: []keyword{
			{"tax", 0.25}, {"income tax", 0.3}, {"gst", 0.3},
			{"refund", 0.2}, {"pan", 0.2}, {"tan", 0.2},
			{"return", 0.15}, {"itr", 0.25}, {"assessment", 0.2},
			{"notice", 0.15}, {"demand", 0.15}, {"tds", 0.25},
		},
		escalationPath: []string{
			"Assessing Officer → CIT → CCIT → CBDT",
		},
	},
	{
		category: CategoryBanking,
		departments: []Department{
			dept("Bank Branch", "local"),
			dept("Regional Manager", "regional"),
			dept("Banking Ombudsman", "regional"),
			dept("RBI", "central"),
		},
		keywords: []keyword{
			{"bank", 0.3}, {"account", 0.2}, {"loan", 0.25},
			{"atm", 0.25}, {"cheque", 0.2}, {"interest", 0.15},
			{"deposit", 0.15}, {"withdrawal", 0.15}, {"fraud", 0.2},
			{"netbanking", 0.2}, {"upi", 0.2}, {"transaction", 0.15},
		},
		escalationPath: []string{
			"Branch Manager → Regional Manager → CMD → Banking Ombudsman → RBI",
		},
	},
	{
		category: CategoryTelecom,
		departments: []Department{
			dept("Telecom Service Provider", "private"),
			dept("TRAI", "central"),
			dept("DoT", "central"),
		},
		keywords: []keyword{
			{"mobile", 0.2}, {"phone", 0.2}, {"sim", 0.25},
			{"network", 0.2}, {"internet", 0.2}, {"broadband", 0.25},
			{"recharge", 0.15}, {"bill", 0.1}, {"trai", 0.3},
			{"portability", 0.2}, {"dnd", 0.2}, {"otp", 0.15},
		},
		escalationPath: []string{
			"Customer Care → Nodal Officer → Appellate Authority → TRAI",
		},
	},
	{
		category: CategoryRailway,
		departments: []Department{
			dept("Railway Station", "local"),
			dept("Division Railway Manager", "division"),
			dept("Railway Board", "central"),
		},
		keywords: []keyword{
			{"railway", 0.3}, {"train", 0.25}, {"ticket", 0.2},
			{"reservation", 0.2}, {"irctc", 0.3}, {"tatkal", 0.25},
			{"coach", 0.15}, {"station", 0.1}, {"platform", 0.15},
			{"refund", 0.15}, {"pnr", 0.25}, {"delay", 0.1},
		},
		escalationPath: []string{
			"Station Master → DRM → GM → Railway Board",
		},
	},
	{
		category: CategoryPassport,
		departments: []Department{
			dept("Passport Seva Kendra", "district"),
			dept("Regional Passport Office", "regional"),
			dept("Ministry of External Affairs", "central"),
		},
		keywords: []keyword{
			{"passport", 0.3}, {"visa", 0.25}, {"psk", 0.25},
			{"tatkaal passport", 0.3}, {"ecr", 0.2}, {"emigration", 0.2},
			{"renewal", 0.15}, {"police verification", 0.2},
		},
		escalationPath: []string{
			"PSK → RPO → CPV Division → MEA",
		},
	},
	{
		category: CategoryEmployment,
		departments: []Department{
			dept("Employment Exchange", "district"),
			dept("Labour Department", "state"),
			dept("EPFO", "central"),
		},
		keywords: []keyword{
			{"employment", 0.25}, {"job", 0.2}, {"recruitment", 0.2},
			{"labour", 0.2}, {"epfo", 0.3}, {"provident fund", 0.25},
			{"esic", 0.25}, {"minimum wage", 0.25}, {"factory", 0.15},
		},
		escalationPath: []string{
			"District Employment Officer → Labour Commissioner → Secretary",
		},
	},
	{
		category: CategorySocialWelfare,
		departments: []Department{
			dept("Social Welfare Department", "state"),
			dept("Women & Child Development", "state"),
			dept("Disability Commissioner", "state"),
		},
		keywords: []keyword{
			{"disability", 0.25}, {"handicapped", 0.2}, {"scholarship", 0.2},
			{"widow", 0.2}, {"orphan", 0.2}, {"senior citizen", 0.25},
			{"women", 0.1}, {"child", 0.1}, {"caste certificate", 0.25},
			{"income certificate", 0.25}, {"domicile", 0.2},
		},
		escalationPath: []string{
			"Welfare Officer → District Officer → Director → Secretary",
		},
	},
	{
		category: CategoryEnvironment,
		departments: []Department{
			dept("Pollution Control Board", "state"),
			dept("Environment Department", "state"),
			dept("Forest Department", "state"),
			dept("NGT", "central"),
		},
		keywords: []keyword{
			{"pollution", 0.3}, {"environment", 0.25}, {"forest", 0.25},
			{"air quality", 0.25}, {"noise", 0.2}, {"waste", 0.2},
			{"industrial", 0.15}, {"effluent", 0.2}, {"tree", 0.1},
			{"wildlife", 0.2}, {"ngt", 0.3},
		},
		escalationPath: []string{
			"District Officer → Regional Officer → Chairman PCB → NGT",
		},
	},
}
