package search

// DefaultSources is the static site catalog for Accra Heights Hospital.
// It is consumed once at index-build time; nothing writes back into it.
func DefaultSources() []Source {
	return []Source{
		{
			ID:      "svc-cardiology",
			Title:   "Cardiology",
			Type:    TypeService,
			Content: "Our cardiology department offers consultations, ECG, echocardiography, stress testing and long-term management of heart conditions including hypertension and heart failure.",
			Keywords: []string{
				"heart", "cardiac", "ecg", "hypertension", "blood pressure", "chest",
			},
		},
		{
			ID:      "svc-pediatrics",
			Title:   "Pediatrics",
			Type:    TypeService,
			Content: "Child health services covering immunization, growth monitoring, nutrition counselling and treatment of common childhood illnesses such as malaria.",
			Keywords: []string{
				"children", "child", "immunization", "vaccination", "baby", "malaria",
			},
		},
		{
			ID:      "svc-obgyn",
			Title:   "Obstetrics & Gynecology",
			Type:    TypeService,
			Content: "Antenatal and postnatal care, safe delivery, family planning and gynecological consultations with experienced specialists.",
			Keywords: []string{
				"maternity", "antenatal", "pregnancy", "delivery", "family planning",
			},
		},
		{
			ID:      "svc-orthopedics",
			Title:   "Orthopedics",
			Type:    TypeService,
			Content: "Treatment of fractures, joint pain and sports injuries, including casting, physiotherapy referral and minor orthopedic surgery.",
			Keywords: []string{
				"bone", "fracture", "joint", "injury", "sprain",
			},
		},
		{
			ID:      "svc-dental",
			Title:   "Dental Clinic",
			Type:    TypeService,
			Content: "Routine dental check-ups, cleaning, fillings, extractions and oral health education for adults and children.",
			Keywords: []string{
				"dentist", "teeth", "tooth", "oral", "filling", "extraction",
			},
		},
		{
			ID:      "svc-eye",
			Title:   "Ophthalmology",
			Type:    TypeService,
			Content: "Eye examinations, treatment of cataracts and glaucoma, and prescription of corrective lenses.",
			Keywords: []string{
				"eye", "vision", "glasses", "cataract", "glaucoma",
			},
		},
		{
			ID:      "svc-general",
			Title:   "General Medicine",
			Type:    TypeService,
			Content: "Walk-in and scheduled consultations for general health concerns, chronic disease management and annual check-ups.",
			Keywords: []string{
				"consultation", "check-up", "checkup", "general practitioner", "opd",
			},
		},
		{
			ID:      "svc-physio",
			Title:   "Physiotherapy",
			Type:    TypeService,
			Content: "Rehabilitation after injury or surgery, management of chronic pain and mobility training with qualified physiotherapists.",
			Keywords: []string{
				"physio", "rehabilitation", "mobility", "pain management",
			},
		},
		{
			ID:      "fac-pharmacy",
			Title:   "Pharmacy",
			Type:    TypeFacility,
			Content: "The hospital pharmacy is open 24 hours and stocks a wide range of prescription and over-the-counter medicines.",
			Keywords: []string{
				"medicine", "drugs", "prescription", "dispensary",
			},
		},
		{
			ID:      "fac-laboratory",
			Title:   "Laboratory",
			Type:    TypeFacility,
			Content: "Full diagnostic laboratory offering blood tests, malaria screening, typhoid testing and routine panels with same-day results.",
			Keywords: []string{
				"lab", "blood test", "diagnostics", "screening",
			},
		},
		{
			ID:      "fac-radiology",
			Title:   "Radiology & Imaging",
			Type:    TypeFacility,
			Content: "X-ray, ultrasound and CT scanning services supporting all clinical departments.",
			Keywords: []string{
				"x-ray", "xray", "scan", "ultrasound", "imaging",
			},
		},
		{
			ID:      "fac-emergency",
			Title:   "Emergency & Accident Unit",
			Type:    TypeFacility,
			Content: "24-hour emergency care with resuscitation bays, an ambulance service and on-call specialists. Call 193 or our emergency line for an ambulance.",
			Keywords: []string{
				"emergency", "accident", "ambulance", "casualty", "24 hours",
			},
		},
		{
			ID:      "page-visiting-hours",
			Title:   "Visiting Hours",
			Type:    TypePage,
			Content: "General wards welcome visitors daily from 10:00 to 12:00 and 16:00 to 18:00. The outpatient department is open Monday to Friday, 08:00 to 17:00, and Saturday mornings.",
			Keywords: []string{
				"hours", "opening", "visiting", "opd", "schedule",
			},
		},
		{
			ID:      "page-directions",
			Title:   "Directions & Location",
			Type:    TypePage,
			Content: "Accra Heights Hospital is located on Liberation Road, Accra, opposite the national sports stadium. Tro-tro and taxi routes stop at the hospital gate; on-site parking is free for patients.",
			Keywords: []string{
				"address", "location", "map", "parking", "liberation road",
			},
		},
		{
			ID:      "page-about",
			Title:   "About Accra Heights Hospital",
			Type:    TypeInfo,
			Content: "Founded in 1998, Accra Heights Hospital is a 250-bed private hospital serving the Greater Accra region with a mission of accessible, compassionate care.",
			Keywords: []string{
				"about", "history", "mission", "hospital",
			},
		},
		{
			ID:      "doc-asante",
			Title:   "Dr. Yaw Asante - Cardiologist",
			Type:    TypeDoctor,
			Content: "Senior consultant cardiologist with 15 years of experience in interventional cardiology. Consults Monday, Wednesday and Friday.",
			Keywords: []string{
				"cardiologist", "heart", "consultant",
			},
		},
		{
			ID:      "doc-mensah",
			Title:   "Dr. Abena Mensah - Pediatrician",
			Type:    TypeDoctor,
			Content: "Consultant pediatrician specializing in neonatal care and childhood nutrition. Consults Tuesday to Thursday.",
			Keywords: []string{
				"pediatrician", "children", "neonatal",
			},
		},
		{
			ID:      "doc-owusu",
			Title:   "Dr. Kwame Owusu - Orthopedic Surgeon",
			Type:    TypeDoctor,
			Content: "Orthopedic surgeon focusing on trauma and joint replacement. Theatre days Monday and Thursday, clinic on Friday.",
			Keywords: []string{
				"surgeon", "orthopedic", "trauma",
			},
		},
	}
}
