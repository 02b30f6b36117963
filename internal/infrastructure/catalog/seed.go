package catalog

import (
	domain "github.com/safehub-io/safehub/internal/domain/catalog"
)

// Default returns the built-in catalog of safety management modules. It is
// used when no catalog file is configured and by the seed command.
func Default() (*domain.Catalog, error) {
	return build(defaultModules())
}

func defaultModules() []moduleSpec {
	return []moduleSpec{
		{
			ID:          "visitor_registration",
			Name:        "Visitor Registration",
			Description: "Front-desk check-in and check-out for visitors and contractors, with badge printing and evacuation lists.",
			Category:    "core",
			Tier:        "starter",
			Core:        true,
			Features: []string{
				"Visitor check-in and check-out",
				"Badge printing",
				"Evacuation list",
				"Host notifications",
			},
			Pricing: domain.PricingPolicy{
				Model:     domain.PricingModelFixed,
				BasePrice: 0,
			},
			Rating:      4.6,
			ReviewCount: 182,
			Popularity:  95,
		},
		{
			ID:          "incident_reporting",
			Name:        "Incident Reporting",
			Description: "Report, track and resolve workplace incidents and near misses with photos, severity levels and follow-up actions.",
			Category:    "core",
			Tier:        "starter",
			Core:        true,
			Features: []string{
				"Incident and near-miss reports",
				"Photo attachments",
				"Severity classification",
				"Follow-up actions",
			},
			Pricing: domain.PricingPolicy{
				Model:     domain.PricingModelFixed,
				BasePrice: 0,
			},
			Rating:      4.8,
			ReviewCount: 240,
			Popularity:  98,
		},
		{
			ID:          "equipment_tracking",
			Name:        "Equipment Tracking",
			Description: "Inventory of safety equipment with inspection schedules, expiry alerts and QR-code scanning.",
			Category:    "premium",
			Tier:        "professional",
			Features: []string{
				"Equipment inventory",
				"Inspection schedules",
				"Expiry alerts",
				"QR-code scanning",
			},
			Pricing: domain.PricingPolicy{
				Model:            domain.PricingModelHybrid,
				BasePrice:        2900,
				PricePerBuilding: 900,
				SetupFee:         4900,
				FreeTrialDays:    14,
			},
			Rating:      4.4,
			ReviewCount: 97,
			Popularity:  74,
		},
		{
			ID:          "floor_plan_viewer",
			Name:        "Floor Plan Viewer",
			Description: "Interactive building floor plans with safety equipment locations, escape routes and assembly points.",
			Category:    "premium",
			Tier:        "professional",
			Features: []string{
				"Interactive floor plans",
				"Equipment locations",
				"Escape routes",
				"Assembly points",
			},
			Pricing: domain.PricingPolicy{
				Model:            domain.PricingModelPerBuilding,
				PricePerBuilding: 1500,
				SetupFee:         9900,
			},
			Rating:      4.2,
			ReviewCount: 61,
			Popularity:  58,
		},
		{
			ID:          "training_certification",
			Name:        "Training & Certification",
			Description: "Track safety training, certifications and renewals per employee, with reminders before expiry.",
			Category:    "premium",
			Tier:        "professional",
			Features: []string{
				"Training records",
				"Certification tracking",
				"Renewal reminders",
				"Compliance matrix",
			},
			Pricing: domain.PricingPolicy{
				Model:        domain.PricingModelPerUser,
				PricePerUser: 200,
				UserTiers: []domain.UserTier{
					{MinUsers: 1, MaxUsers: 24, PricePerUser: 250},
					{MinUsers: 25, MaxUsers: 99, PricePerUser: 200},
					{MinUsers: 100, MaxUsers: 499, PricePerUser: 160},
				},
				FreeTrialDays: 30,
			},
			Rating:      4.5,
			ReviewCount: 133,
			Popularity:  81,
		},
		{
			ID:           "analytics_dashboard",
			Name:         "Safety Analytics",
			Description:  "Dashboards and trend analysis over incidents, inspections and training compliance.",
			Category:     "enterprise",
			Tier:         "enterprise",
			Features:     []string{"Incident trends", "Compliance KPIs", "Scheduled reports", "Data export"},
			Dependencies: []string{"incident_reporting"},
			Pricing: domain.PricingPolicy{
				Model:        domain.PricingModelHybrid,
				BasePrice:    9900,
				PricePerUser: 100,
			},
			Rating:      4.1,
			ReviewCount: 42,
			Popularity:  49,
		},
		{
			ID:          "contractor_management",
			Name:        "Contractor Management",
			Description: "Onboard contractors with induction checks, document validation and site access rules.",
			Category:    "addon",
			Tier:        "professional",
			Features:    []string{"Contractor onboarding", "Document validation", "Induction checks", "Site access rules"},
			Dependencies: []string{
				"visitor_registration",
			},
			Pricing: domain.PricingPolicy{
				Model:     domain.PricingModelFixed,
				BasePrice: 3900,
			},
			Rating:      4.0,
			ReviewCount: 28,
			Popularity:  37,
		},
		{
			ID:          "emergency_broadcast",
			Name:        "Emergency Broadcast",
			Description: "Send alerts to everyone on site by SMS, push and PA integration during drills and emergencies.",
			Category:    "enterprise",
			Tier:        "enterprise",
			Status:      "beta",
			Features:    []string{"SMS alerts", "Push notifications", "PA integration", "Drill mode"},
			Pricing: domain.PricingPolicy{
				Model:            domain.PricingModelHybrid,
				BasePrice:        5000,
				PricePerUser:     200,
				PricePerBuilding: 1500,
			},
			Rating:      3.9,
			ReviewCount: 11,
			Popularity:  22,
		},
	}
}
