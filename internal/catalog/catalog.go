package catalog

import "slices"

// Sports is the fixed list of sports offered at the meet. Teams, matches and
// roster entries must reference one of these.
var Sports = []string{
	"cricket",
	"football",
	"volleyball",
	"basketball",
	"badminton",
	"table-tennis",
	"kabaddi",
	"kho-kho",
	"chess",
	"carrom",
	"athletics",
	"throwball",
}

// Departments a captain can represent.
var Departments = []string{
	"CSE",
	"CSE-AIML",
	"CSE-DS",
	"IT",
	"ECE",
	"EEE",
	"EIE",
	"MECH",
	"CIVIL",
	"CHEM",
	"AERO",
	"AUTO",
	"BIOTECH",
	"MBA",
	"MCA",
	"BBA",
	"BCA",
	"BSC",
	"BCOM",
	"BA",
}

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsSport(s string) bool {
	return slices.Contains(Sports, s)
}

func IsDepartment(d string) bool {
	return slices.Contains(Departments, d)
}

func IsBloodGroup(b string) bool {
	return slices.Contains(BloodGroups, b)
}
