package states

import "govprograms/internal/program"

// Maine returns the Maine programs in display order.
func Maine() []program.Program {
	return []program.Program{
		{
			ID:          "me-mainecare",
			Title:       "MaineCare",
			Category:    program.CategoryHealthcare,
			Description: "Maine's Medicaid program providing free or low-cost health coverage to eligible residents.",
			Benefits: []string{
				"Primary and specialty care",
				"Hospital and emergency services",
				"Prescription drugs",
				"Mental health and substance use treatment",
			},
			Eligibility: []string{
				"Maine resident",
				"Adults with income up to 138% of the federal poverty level",
				"Children, pregnant people, older adults, and people with disabilities at higher limits",
			},
			Contact: program.Contact{
				Phone:   "1-855-797-4357",
				Website: "https://www.maine.gov/dhhs/oms",
			},
		},
		{
			ID:          "me-snap",
			Title:       "Maine Food Supplement Program (SNAP)",
			Category:    program.CategoryFood,
			Description: "Food benefits delivered on an EBT card to help Maine households afford a healthy diet.",
			Benefits: []string{
				"Monthly food benefits on an EBT card",
				"Bonus value for fruits and vegetables at participating markets",
			},
			Eligibility: []string{
				"Maine resident",
				"Household income and assets within program limits",
				"Work requirements for some adults",
			},
			Contact: program.Contact{
				Phone:   "1-855-797-4357",
				Website: "https://www.maine.gov/dhhs/ofi/programs-services/food-supplement",
			},
		},
		{
			ID:          "me-tanf",
			Title:       "Maine Temporary Assistance for Needy Families",
			Category:    program.CategoryFamilySupport,
			Description: "Cash assistance and employment support for low-income families with children.",
			Benefits: []string{
				"Monthly cash benefits",
				"ASPIRE employment and training program",
				"Help with child care and transportation",
			},
			Eligibility: []string{
				"Maine resident with a dependent child",
				"Household income within program limits",
				"Participation in ASPIRE unless exempt",
			},
			Contact: program.Contact{
				Phone:   "1-855-797-4357",
				Website: "https://www.maine.gov/dhhs/ofi/programs-services/tanf",
			},
		},
	}
}
