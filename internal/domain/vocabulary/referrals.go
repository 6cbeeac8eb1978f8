package vocabulary

import "github.com/gregory-bot/telecurehospital/internal/domain/entities"

// referralConditions always trigger a specialist referral regardless of severity.
var referralConditions = []string{
	"HIV/AIDS", "Tuberculosis", "Meningitis",
	"Multiple Sclerosis", "Lupus", "Rheumatoid Arthritis",
	"Parkinsons Disease", "Alzheimers Disease", "Epilepsy",
	"Lung Cancer", "Breast Cancer", "Prostate Cancer",
	"Leukemia", "Lymphoma", "Chronic Kidney Disease",
	"Hepatitis B", "Hepatitis C", "Cystic Fibrosis",
	"Hemophilia", "Thalassemia", "Sickle Cell Anemia",
	"Marfan Syndrome", "Amyotrophic Lateral Sclerosis (ALS)", "Huntingtons Disease",
	"Osteoporosis", "Endometriosis", "Polycystic Ovary Syndrome (PCOS)",
	"Ovarian Cyst", "Heart Disease", "Stroke",
	"Peripheral Artery Disease", "Deep Vein Thrombosis",
}

var specialistTypes = map[string]string{
	"Tuberculosis":                        "Pulmonologist",
	"Meningitis":                          "Neurologist",
	"Multiple Sclerosis":                  "Neurologist",
	"Lupus":                               "Rheumatologist",
	"Rheumatoid Arthritis":                "Rheumatologist",
	"Parkinsons Disease":                  "Neurologist",
	"Alzheimers Disease":                  "Neurologist",
	"HIV/AIDS":                            "Infectious Disease Specialist",
	"Epilepsy":                            "Neurologist",
	"Lung Cancer":                         "Oncologist",
	"Breast Cancer":                       "Oncologist",
	"Prostate Cancer":                     "Oncologist",
	"Leukemia":                            "Hematologist/Oncologist",
	"Lymphoma":                            "Hematologist/Oncologist",
	"Chronic Kidney Disease":              "Nephrologist",
	"Hepatitis B":                         "Hepatologist",
	"Hepatitis C":                         "Hepatologist",
	"Cystic Fibrosis":                     "Pulmonologist",
	"Hemophilia":                          "Hematologist",
	"Thalassemia":                         "Hematologist",
	"Sickle Cell Anemia":                  "Hematologist",
	"Marfan Syndrome":                     "Geneticist",
	"Amyotrophic Lateral Sclerosis (ALS)": "Neurologist",
	"Huntingtons Disease":                 "Neurologist",
	"Osteoporosis":                        "Endocrinologist",
	"Endometriosis":                       "Gynecologist",
	"Polycystic Ovary Syndrome (PCOS)":    "Gynecologist",
	"Ovarian Cyst":                        "Gynecologist",
	"Heart Disease":                       "Cardiologist",
	"Stroke":                              "Neurologist",
	"Peripheral Artery Disease":           "Vascular Surgeon",
	"Deep Vein Thrombosis":                "Vascular Surgeon",
	"Obesity":                             "Endocrinologist",
	"Insomnia":                            "Sleep Specialist",
	"Sleep Apnea":                         "Sleep Specialist",
	"Vertigo":                             "Otolaryngologist (ENT)",
	"Chikungunya":                         "Infectious Disease Specialist",
	"Zika Virus":                          "Infectious Disease Specialist",
	"Typhoid":                             "Infectious Disease Specialist",
	"Measles":                             "Pediatrician",
	"Mumps":                               "Pediatrician",
	"Rubella":                             "Pediatrician",
	"Chickenpox":                          "Pediatrician",
	"Shingles":                            "Dermatologist",
	"Scarlet Fever":                       "Pediatrician",
	"Whooping Cough":                      "Pediatrician",
	"Vitamin D Deficiency":                "Endocrinologist",
	"Raynaud’s Disease":                   "Rheumatologist",
	"Addison’s Disease":                   "Endocrinologist",
	"Panic Disorder":                      "Psychiatrist",
	"Obsessive-Compulsive Disorder (OCD)": "Psychiatrist",
	"Bipolar Disorder":                    "Psychiatrist",
	"Schizophrenia":                       "Psychiatrist",
	"Panic Attacks":                       "Psychiatrist",
	"Autism Spectrum Disorder (ASD)":      "Developmental Pediatrician",
}

var recoveryTimes = map[string]map[entities.Urgency]string{
	"Common Cold": {
		entities.UrgencyLow:    "3-7 days",
		entities.UrgencyMedium: "7-10 days",
		entities.UrgencyHigh:   "10-14 days",
	},
	"COVID-19": {
		entities.UrgencyLow:    "7-14 days",
		entities.UrgencyMedium: "14-21 days",
		entities.UrgencyHigh:   "21-30 days",
	},
}
