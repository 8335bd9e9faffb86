package states

import "govprograms/internal/program"

// Kansas returns the Kansas programs in display order.
func Kansas() []program.Program {
	return []program.Program{
		{
			ID:          "ks-medicaid",
			Title:       "KanCare (Kansas Medicaid)",
			Category:    program.CategoryHealthcare,
			Description: "Kansas' Medicaid and CHIP program, delivered through managed care organizations, covering medical, behavioral health and long-term care services.",
			Benefits: []string{
				"Doctor visits and hospital care",
				"Prescription drugs",
				"Behavioral health services",
				"Dental and vision coverage for children",
				"Long-term services and supports",
			},
			Eligibility: []string{
				"Kansas resident",
				"U.S. citizen or qualified non-citizen",
				"Household income within program limits",
				"Children, pregnant women, parents or caretakers, older adults, or people with disabilities",
			},
			Contact: program.Contact{
				Phone:   "1-800-792-4884",
				Website: "https://www.kancare.ks.gov",
			},
		},
		{
			ID:          "ks-snap",
			Title:       "Kansas Food Assistance (SNAP)",
			Category:    program.CategoryFood,
			Description: "Monthly benefits on a Vision card to help low-income households buy groceries.",
			Benefits: []string{
				"Monthly food benefits loaded on an EBT card",
				"Use at participating grocery stores and farmers markets",
				"Employment and training support",
			},
			Eligibility: []string{
				"Kansas resident",
				"Gross household income at or below 130% of the federal poverty level",
				"Work requirements for able-bodied adults without dependents",
			},
			Contact: program.Contact{
				Phone:   "1-888-369-4777",
				Website: "https://www.dcf.ks.gov/services/ees/Pages/Food/FoodAssistance.aspx",
			},
		},
		{
			ID:          "ks-tanf",
			Title:       "Kansas Successful Families (TANF)",
			Category:    program.CategoryFamilySupport,
			Description: "Temporary cash assistance and employment services for families with children.",
			Benefits: []string{
				"Monthly cash assistance",
				"Job search and training services",
				"Child care and transportation support while working",
			},
			Eligibility: []string{
				"Kansas resident with a child under 18 in the home",
				"Household income and resources within program limits",
				"Participation in work programs",
			},
			Contact: program.Contact{
				Phone:   "1-888-369-4777",
				Website: "https://www.dcf.ks.gov/services/ees/Pages/Cash/CashAssistance.aspx",
			},
		},
	}
}
