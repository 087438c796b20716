package authority

// The registry is an ordered table so that role precedence and iteration
// order are stable.  Address templates use {state}, {district} and {area}
// placeholders filled at resolution time.

const defaultRTIFee = 10 // INR

type roleEntry struct {
	role      string
	authority Authority
}

type categoryEntry struct {
	category string
	roles    []roleEntry
}

func pio(designation, department string, level Level, addressTemplate, notes string) roleEntry {
	return roleEntry{role: "pio", authority: Authority{
		Name:            "Public Information Officer",
		Designation:     designation,
		Department:      department,
		Level:           level,
		AddressTemplate: addressTemplate,
		RTIFeeINR:       defaultRTIFee,
		Notes:           notes,
	}}
}

var registry = []categoryEntry{
	{category: "electricity", roles: []roleEntry{
		pio("PIO, Electricity Department", "State Electricity Board / DISCOM", LevelState,
			"{state} State Electricity Board, {district}", "For RTI applications related to electricity"),
		{role: "ae", authority: Authority{
			Name: "Assistant Engineer", Designation: "Assistant Engineer (Electrical)",
			Department: "State Electricity Board", Level: LevelLocal,
			AddressTemplate: "Assistant Engineer Office, {area}, {district}",
			Notes:           "For local electrical complaints",
		}},
		{role: "se", authority: Authority{
			Name: "Superintending Engineer", Designation: "Superintending Engineer",
			Department: "State Electricity Board", Level: LevelDistrict,
			AddressTemplate: "SE Office, {district} Circle",
			Notes:           "For escalated complaints",
		}},
		{role: "grievance", authority: Authority{
			Name: "Consumer Grievance Redressal Forum", Designation: "Chairman, CGRF",
			Department: "State Electricity Regulatory Commission", Level: LevelState,
			AddressTemplate: "CGRF, {state} Electricity Regulatory Commission",
			Notes:           "For unresolved consumer complaints",
		}},
	}},
	{category: "water", roles: []roleEntry{
		pio("PIO, Water Supply Department", "Jal Board / Municipal Corporation", LevelDistrict,
			"{state} Jal Board, {district}", ""),
		{role: "je", authority: Authority{
			Name: "Junior Engineer", Designation: "Junior Engineer (Water Supply)",
			Department: "Municipal Corporation / Jal Board", Level: LevelLocal,
			AddressTemplate: "JE Office, Water Supply Division, {area}",
			Notes:           "For local water supply issues",
		}},
		{role: "ee", authority: Authority{
			Name: "Executive Engineer", Designation: "Executive Engineer (Water)",
			Department: "Jal Board", Level: LevelDistrict,
			AddressTemplate: "EE Office, {district} Division",
			Notes:           "For district-level water issues",
		}},
	}},
	{category: "roads", roles: []roleEntry{
		pio("PIO, PWD", "Public Works Department", LevelState, "PWD Secretariat, {state}", ""),
		{role: "je", authority: Authority{
			Name: "Junior Engineer", Designation: "Junior Engineer (Roads)",
			Department: "PWD / Municipal Corporation", Level: LevelLocal,
			AddressTemplate: "PWD Sub-Division, {area}, {district}",
			Notes:           "For local road repair complaints",
		}},
		{role: "ee", authority: Authority{
			Name: "Executive Engineer", Designation: "Executive Engineer (Roads)",
			Department: "PWD", Level: LevelDistrict,
			AddressTemplate: "PWD Division Office, {district}",
		}},
		{role: "nhai", authority: Authority{
			Name: "Project Director", Designation: "Project Director, NHAI",
			Department: "National Highways Authority of India", Level: LevelCentral,
			AddressTemplate: "NHAI Project Office, {state}",
			Notes:           "For national highway issues",
		}},
	}},
	{category: "education", roles: []roleEntry{
		pio("PIO, Education Department", "Directorate of Education", LevelState,
			"Directorate of Education, {state}", ""),
		{role: "deo", authority: Authority{
			Name: "District Education Officer", Designation: "DEO",
			Department: "Education Department", Level: LevelDistrict,
			AddressTemplate: "DEO Office, {district}",
			Notes:           "For school-related issues",
		}},
		{role: "principal", authority: Authority{
			Name: "Principal", Designation: "Principal / Headmaster",
			Department: "Government School", Level: LevelLocal,
			AddressTemplate: "Government School, {area}, {district}",
		}},
	}},
	{category: "health", roles: []roleEntry{
		pio("PIO, Health Department", "Directorate of Health Services", LevelState,
			"Directorate of Health Services, {state}", ""),
		{role: "cmo", authority: Authority{
			Name: "Chief Medical Officer", Designation: "CMO",
			Department: "District Health Department", Level: LevelDistrict,
			AddressTemplate: "CMO Office, {district}",
			Notes:           "For district health complaints",
		}},
		{role: "medical_superintendent", authority: Authority{
			Name: "Medical Superintendent", Designation: "Medical Superintendent",
			Department: "District / Government Hospital", Level: LevelDistrict,
			AddressTemplate: "Government Hospital, {district}",
		}},
	}},
	{category: "police", roles: []roleEntry{
		pio("PIO, Police Department", "Police Headquarters", LevelState,
			"Police Headquarters, {state}", ""),
		{role: "sho", authority: Authority{
			Name: "Station House Officer", Designation: "SHO",
			Department: "Police Station", Level: LevelLocal,
			AddressTemplate: "Police Station, {area}, {district}",
			Notes:           "For FIR and local law enforcement",
		}},
		{role: "sp", authority: Authority{
			Name: "Superintendent of Police", Designation: "SP",
			Department: "District Police", Level: LevelDistrict,
			AddressTemplate: "SP Office, {district}",
			Notes:           "For escalated police complaints",
		}},
		{role: "ig", authority: Authority{
			Name: "Inspector General of Police", Designation: "IG",
			Department: "Police Range", Level: LevelState,
			AddressTemplate: "IG Office, {state}",
		}},
	}},
	{category: "land", roles: []roleEntry{
		pio("PIO, Revenue Department", "Revenue Department", LevelState,
			"Revenue Secretariat, {state}", ""),
		{role: "tehsildar", authority: Authority{
			Name: "Tehsildar", Designation: "Tehsildar / Naib Tehsildar",
			Department: "Revenue Department", Level: LevelLocal,
			AddressTemplate: "Tehsil Office, {area}, {district}",
			Notes:           "For land records, mutations, revenue issues",
		}},
		{role: "sdo", authority: Authority{
			Name: "Sub-Divisional Officer", Designation: "SDO (Revenue)",
			Department: "Revenue Department", Level: LevelDistrict,
			AddressTemplate: "SDO Office, {district}",
		}},
		{role: "collector", authority: Authority{
			Name: "District Collector", Designation: "Collector & District Magistrate",
			Department: "District Administration", Level: LevelDistrict,
			AddressTemplate: "Collectorate, {district}",
			Notes:           "For major land disputes and escalations",
		}},
	}},
	{category: "transport", roles: []roleEntry{
		pio("PIO, Transport Department", "Transport Department", LevelState,
			"Transport Commissioner Office, {state}", ""),
		{role: "rto", authority: Authority{
			Name: "Regional Transport Officer", Designation: "RTO",
			Department: "Regional Transport Office", Level: LevelDistrict,
			AddressTemplate: "RTO Office, {district}",
			Notes:           "For license, registration, permits",
		}},
		{role: "arto", authority: Authority{
			Name: "Assistant Regional Transport Officer", Designation: "ARTO",
			Department: "Regional Transport Office", Level: LevelDistrict,
			AddressTemplate: "RTO Office, {district}",
		}},
	}},
	{category: "ration", roles: []roleEntry{
		pio("PIO, Food & Civil Supplies", "Food & Civil Supplies Department", LevelState,
			"Food & Civil Supplies Directorate, {state}", ""),
		{role: "fso", authority: Authority{
			Name: "Food & Supply Officer", Designation: "FSO / DFSO",
			Department: "Food & Civil Supplies", Level: LevelDistrict,
			AddressTemplate: "FSO Office, {district}",
			Notes:           "For ration card, PDS shop issues",
		}},
		{role: "inspector", authority: Authority{
			Name: "Food Inspector", Designation: "Food Inspector",
			Department: "Food & Civil Supplies", Level: LevelLocal,
			AddressTemplate: "FSO Office, {area}, {district}",
		}},
	}},
	{category: "pension", roles: []roleEntry{
		pio("PIO, Pension Department", "Pension & Pensioners Welfare", LevelState,
			"Pension Directorate, {state}", ""),
		{role: "treasury", authority: Authority{
			Name: "Treasury Officer", Designation: "District Treasury Officer",
			Department: "Treasury Department", Level: LevelDistrict,
			AddressTemplate: "District Treasury, {district}",
			Notes:           "For pension disbursement issues",
		}},
	}},
	{category: "municipal", roles: []roleEntry{
		pio("PIO, Municipal Corporation", "Municipal Corporation / Nagar Palika", LevelDistrict,
			"Municipal Corporation, {district}", ""),
		{role: "commissioner", authority: Authority{
			Name: "Municipal Commissioner", Designation: "Commissioner",
			Department: "Municipal Corporation", Level: LevelDistrict,
			AddressTemplate: "Municipal Corporation, {district}",
			Notes:           "For major civic issues",
		}},
		{role: "health_officer", authority: Authority{
			Name: "Municipal Health Officer", Designation: "MHO",
			Department: "Municipal Corporation", Level: LevelDistrict,
			AddressTemplate: "Municipal Corporation, {district}",
			Notes:           "For sanitation, health hazards",
		}},
	}},
	{category: "general", roles: []roleEntry{
		pio("PIO", "Concerned Department", LevelState, "Secretariat, {state}", ""),
		{role: "collector", authority: Authority{
			Name: "District Collector", Designation: "Collector & District Magistrate",
			Department: "District Administration", Level: LevelDistrict,
			AddressTemplate: "Collectorate, {district}",
			Notes:           "For general grievances",
		}},
		{role: "grievance", authority: Authority{
			Name: "Grievance Cell", Designation: "Officer In-Charge, Grievance Cell",
			Department: "Chief Minister's Office / District Administration", Level: LevelState,
			AddressTemplate: "CM Grievance Cell, {state}",
		}},
	}},
}

func categoryRoles(category string) []roleEntry {
	for _, e := range registry {
		if e.category == category {
			return e.roles
		}
	}
	return nil
}

func lookupRole(roles []roleEntry, role string) (Authority, bool) {
	for _, r := range roles {
		if r.role == role {
			return r.authority, true
		}
	}
	return Authority{}, false
}

type stateEntry struct {
	key     string
	capital string
	code    string
}

var states = []stateEntry{
	{"andhra_pradesh", "Amaravati", "AP"},
	{"arunachal_pradesh", "Itanagar", "AR"},
	{"assam", "Dispur", "AS"},
	{"bihar", "Patna", "BR"},
	{"chhattisgarh", "Raipur", "CG"},
	{"goa", "Panaji", "GA"},
	{"gujarat", "Gandhinagar", "GJ"},
	{"haryana", "Chandigarh", "HR"},
	{"himachal_pradesh", "Shimla", "HP"},
	{"jharkhand", "Ranchi", "JH"},
	{"karnataka", "Bengaluru", "KA"},
	{"kerala", "Thiruvananthapuram", "KL"},
	{"madhya_pradesh", "Bhopal", "MP"},
	{"maharashtra", "Mumbai", "MH"},
	{"manipur", "Imphal", "MN"},
	{"meghalaya", "Shillong", "ML"},
	{"mizoram", "Aizawl", "MZ"},
	{"nagaland", "Kohima", "NL"},
	{"odisha", "Bhubaneswar", "OD"},
	{"punjab", "Chandigarh", "PB"},
	{"rajasthan", "Jaipur", "RJ"},
	{"sikkim", "Gangtok", "SK"},
	{"tamil_nadu", "Chennai", "TN"},
	{"telangana", "Hyderabad", "TG"},
	{"tripura", "Agartala", "TR"},
	{"uttar_pradesh", "Lucknow", "UP"},
	{"uttarakhand", "Dehradun", "UK"},
	{"west_bengal", "Kolkata", "WB"},
	{"delhi", "New Delhi", "DL"},
}

func lookupState(key string) (stateEntry, bool) {
	for _, s := range states {
		if s.key == key {
			return s, true
		}
	}
	return stateEntry{}, false
}
