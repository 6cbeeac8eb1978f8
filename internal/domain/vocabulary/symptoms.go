package vocabulary

// symptomNames is the ordered symptom vocabulary. Order fixes the index of
// every presence vector, so entries are only ever appended.
var symptomNames = []string{
	"fever", "cough", "fatigue", "difficulty_breathing", "body_aches",
	"headache", "sore_throat", "loss_of_taste", "nausea", "diarrhea",
	"chills", "rash", "congestion", "vomiting", "chest_pain",
	"dizziness", "sweating", "muscle_weakness", "joint_pain", "runny_nose",
	"loss_of_smell", "eye_pain", "abdominal_pain", "heart_palpitations", "swollen_lymph_nodes",
	"weight_loss", "appetite_loss", "bleeding", "shortness_of_breath", "confusion",
	"insomnia", "anxiety", "depression", "tremors", "seizures",
	"blurred_vision", "tinnitus", "hearing_loss", "numbness", "tingling",
	"memory_loss", "balance_problems", "speech_difficulties", "swelling", "jaundice",
	"excessive_thirst", "frequent_urination", "night_sweats", "hair_loss", "brittle_nails",
	"mood_swings", "hallucinations", "paranoia", "skin_discoloration", "muscle_cramps",
	"back_pain", "neck_pain", "shoulder_pain", "knee_pain", "ankle_pain",
	"dry_mouth", "irritability", "low_energy", "blisters", "sun_sensitivity",
	"weak_pulse", "fainting", "cold_sensitivity", "hot_flashes", "pelvic_pain",
	"itching", "burning_sensation", "weight_gain", "bruising", "blood_in_stool",
	"blood_in_urine", "yellow_eyes", "difficulty_swallowing", "red_eyes", "persistent_cough",
	"delirium", "loss_of_consciousness", "hot_skin", "cold_skin", "shivering",
	"dark_urine", "fatty_stools", "bluish_skin", "pale_skin", "increased_hunger",
	"delayed_wound_healing", "slow_growth", "bone_pain", "unsteady_gait", "vision_loss",
	"sleep_apnea", "urinary_incontinence", "bloating", "hives", "increased_heart_rate",
	"low_blood_pressure", "high_blood_pressure", "sunken_eyes", "enlarged_spleen", "enlarged_liver",
	"cold_hands", "cold_feet", "difficulty_concentrating", "dry_eyes", "pink_eyes",
	"ringing_ears", "irregular_heartbeat", "unusual_cravings", "frequent_infections", "mouth_sores",
	"drooping_face", "slurred_speech", "clumsiness", "nail_clubbing", "painful_urination",
	"frequent_hiccups", "loss_of_control", "heat_intolerance", "frequent_burping", "spasms",
}

var severityWeights = map[string]float64{
	"fever":                    0.6,
	"cough":                    0.4,
	"fatigue":                  0.3,
	"difficulty_breathing":     0.8,
	"body_aches":               0.3,
	"headache":                 0.3,
	"sore_throat":              0.2,
	"loss_of_taste":            0.4,
	"nausea":                   0.3,
	"diarrhea":                 0.4,
	"chills":                   0.4,
	"rash":                     0.3,
	"congestion":               0.2,
	"vomiting":                 0.5,
	"chest_pain":               0.7,
	"dizziness":                0.4,
	"sweating":                 0.3,
	"muscle_weakness":          0.4,
	"joint_pain":               0.3,
	"runny_nose":               0.2,
	"loss_of_smell":            0.4,
	"eye_pain":                 0.3,
	"abdominal_pain":           0.6,
	"heart_palpitations":       0.7,
	"swollen_lymph_nodes":      0.3,
	"weight_loss":              0.6,
	"appetite_loss":            0.5,
	"bleeding":                 0.8,
	"shortness_of_breath":      0.8,
	"confusion":                0.7,
	"insomnia":                 0.4,
	"anxiety":                  0.5,
	"depression":               0.6,
	"tremors":                  0.7,
	"seizures":                 0.9,
	"blurred_vision":           0.6,
	"tinnitus":                 0.4,
	"hearing_loss":             0.5,
	"numbness":                 0.5,
	"tingling":                 0.4,
	"memory_loss":              0.7,
	"balance_problems":         0.7,
	"speech_difficulties":      0.8,
	"swelling":                 0.4,
	"jaundice":                 0.8,
	"excessive_thirst":         0.5,
	"frequent_urination":       0.4,
	"night_sweats":             0.5,
	"hair_loss":                0.2,
	"brittle_nails":            0.1,
	"mood_swings":              0.5,
	"hallucinations":           0.8,
	"paranoia":                 0.7,
	"skin_discoloration":       0.3,
	"muscle_cramps":            0.4,
	"back_pain":                0.3,
	"neck_pain":                0.3,
	"shoulder_pain":            0.3,
	"knee_pain":                0.3,
	"ankle_pain":               0.3,
	"dry_mouth":                0.2,
	"irritability":             0.4,
	"low_energy":               0.4,
	"blisters":                 0.3,
	"sun_sensitivity":          0.3,
	"weak_pulse":               0.6,
	"fainting":                 0.7,
	"cold_sensitivity":         0.3,
	"hot_flashes":              0.3,
	"pelvic_pain":              0.5,
	"itching":                  0.3,
	"burning_sensation":        0.4,
	"weight_gain":              0.3,
	"bruising":                 0.4,
	"blood_in_stool":           0.8,
	"blood_in_urine":           0.8,
	"yellow_eyes":              0.7,
	"difficulty_swallowing":    0.7,
	"red_eyes":                 0.2,
	"persistent_cough":         0.5,
	"delirium":                 0.8,
	"loss_of_consciousness":    0.9,
	"hot_skin":                 0.4,
	"cold_skin":                0.4,
	"shivering":                0.4,
	"dark_urine":               0.6,
	"fatty_stools":             0.6,
	"bluish_skin":              0.8,
	"pale_skin":                0.6,
	"increased_hunger":         0.3,
	"delayed_wound_healing":    0.6,
	"slow_growth":              0.5,
	"bone_pain":                0.7,
	"unsteady_gait":            0.7,
	"vision_loss":              0.9,
	"sleep_apnea":              0.7,
	"urinary_incontinence":     0.6,
	"bloating":                 0.3,
	"hives":                    0.3,
	"increased_heart_rate":     0.7,
	"low_blood_pressure":       0.7,
	"high_blood_pressure":      0.7,
	"sunken_eyes":              0.6,
	"enlarged_spleen":          0.6,
	"enlarged_liver":           0.6,
	"cold_hands":               0.3,
	"cold_feet":                0.3,
	"difficulty_concentrating": 0.4,
	"dry_eyes":                 0.2,
	"pink_eyes":                0.2,
	"ringing_ears":             0.4,
	"irregular_heartbeat":      0.8,
	"unusual_cravings":         0.4,
	"frequent_infections":      0.6,
	"mouth_sores":              0.4,
	"drooping_face":            0.8,
	"slurred_speech":           0.8,
	"clumsiness":               0.5,
	"nail_clubbing":            0.5,
	"painful_urination":        0.6,
	"frequent_hiccups":         0.3,
	"loss_of_control":          0.8,
	"heat_intolerance":         0.5,
	"frequent_burping":         0.3,
	"spasms":                   0.6,
}
