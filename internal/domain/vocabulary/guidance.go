package vocabulary

// preventiveMeasures is keyed by catalog condition.
var preventiveMeasures = map[string][]string{
	"Common Cold": {
		"Frequent hand washing",
		"Avoid close contact with infected individuals",
		"Maintain good sleep hygiene",
		"Stay warm and dry",
	},
	"COVID-19": {
		"Wear masks in public spaces",
		"Maintain social distancing",
		"Regular hand sanitization",
		"Avoid crowded places",
		"Keep spaces well-ventilated",
	},
	"Flu": {
		"Get vaccinated annually",
		"Wash hands regularly",
		"Avoid touching face",
		"Cover mouth and nose when sneezing",
		"Stay hydrated",
	},
	"Bronchitis": {
		"Avoid smoking",
		"Stay away from air pollution",
		"Wash hands frequently",
		"Get vaccinated for flu and pneumonia",
		"Use a humidifier",
	},
	"Pneumonia": {
		"Get vaccinated",
		"Avoid smoking",
		"Wash hands frequently",
		"Maintain good oral hygiene",
		"Eat a healthy diet",
	},
	"Allergies": {
		"Avoid known allergens",
		"Keep indoor spaces clean",
		"Use air purifiers",
		"Wear masks during allergy season",
		"Take antihistamines as prescribed",
	},
	"Asthma": {
		"Avoid exposure to allergens",
		"Use prescribed inhalers regularly",
		"Stay away from air pollution and smoke",
		"Keep up with vaccinations",
		"Monitor symptoms closely",
	},
	"Migraine": {
		"Manage stress effectively",
		"Maintain a consistent sleep schedule",
		"Avoid known triggers (e.g., certain foods, bright lights)",
		"Stay hydrated",
		"Exercise regularly",
	},
	"Sinus Infection": {
		"Avoid allergens and irritants",
		"Stay hydrated",
		"Use nasal sprays as recommended",
		"Avoid smoking",
		"Practice good hand hygiene",
	},
	"Tuberculosis": {
		"Ensure proper ventilation in living spaces",
		"Avoid close contact with infected individuals",
		"Get vaccinated with BCG vaccine",
		"Adhere to prescribed treatments",
		"Maintain a healthy immune system",
	},
	"Malaria": {
		"Use mosquito nets while sleeping",
		"Apply mosquito repellents",
		"Wear protective clothing",
		"Avoid stagnant water near living areas",
		"Take antimalarial medication as needed",
	},
	"Dengue": {
		"Eliminate mosquito breeding grounds",
		"Use insect repellents",
		"Wear long-sleeved clothing",
		"Use mosquito nets",
		"Stay indoors during peak mosquito activity hours",
	},
	"Gastroenteritis": {
		"Wash hands thoroughly before eating",
		"Avoid consuming contaminated food and water",
		"Practice good kitchen hygiene",
		"Stay hydrated",
		"Ensure proper food storage",
	},
	"Chronic Fatigue Syndrome": {
		"Prioritize rest and relaxation",
		"Engage in light, consistent physical activity",
		"Manage stress effectively",
		"Eat a balanced diet",
		"Avoid overexertion",
	},
	"Meningitis": {
		"Get vaccinated",
		"Avoid sharing personal items",
		"Practice good hygiene",
		"Stay away from infected individuals",
		"Seek immediate medical attention for symptoms",
	},
	"Hypertension": {
		"Maintain a healthy weight",
		"Follow a low-sodium diet",
		"Engage in regular physical activity",
		"Manage stress effectively",
		"Avoid smoking and excessive alcohol consumption",
	},
	"Type 2 Diabetes": {
		"Maintain a healthy weight",
		"Follow a balanced, low-sugar diet",
		"Exercise regularly",
		"Monitor blood glucose levels",
		"Avoid tobacco products",
	},
	"Anxiety Disorder": {
		"Practice mindfulness and relaxation techniques",
		"Engage in regular physical activity",
		"Maintain a consistent sleep schedule",
		"Avoid excessive caffeine and alcohol",
		"Seek professional counseling if needed",
	},
	"Depression": {
		"Engage in regular physical activity",
		"Stay connected with supportive individuals",
		"Maintain a consistent sleep schedule",
		"Eat a balanced diet",
		"Seek professional therapy or counseling",
	},
	"Rheumatoid Arthritis": {
		"Engage in regular low-impact exercises",
		"Avoid smoking",
		"Maintain a healthy weight",
		"Follow prescribed treatment plans",
		"Eat an anti-inflammatory diet",
	},
	"Osteoarthritis": {
		"Maintain a healthy weight",
		"Engage in low-impact exercises",
		"Avoid high-impact activities",
		"Manage joint stress",
		"Use proper posture and ergonomic supports",
	},
	"Multiple Sclerosis": {
		"Maintain regular exercise",
		"Manage stress effectively",
		"Stay hydrated",
		"Avoid extreme heat",
		"Get adequate sleep",
	},
	"Parkinsons Disease": {
		"Exercise regularly",
		"Eat a balanced diet",
		"Avoid smoking and excessive alcohol consumption",
		"Engage in mental exercises",
		"Seek support for mobility aids",
	},
	"Alzheimers Disease": {
		"Engage in regular cognitive exercises",
		"Maintain physical activity",
		"Eat a brain-healthy diet",
		"Stay socially active",
		"Control cardiovascular risk factors",
	},
	"Epilepsy": {
		"Take prescribed medications regularly",
		"Avoid known seizure triggers",
		"Get enough sleep",
		"Manage stress",
		"Stay hydrated",
	},
	"Lupus": {
		"Avoid sun exposure",
		"Take prescribed medications",
		"Exercise regularly",
		"Follow a balanced diet",
		"Get regular health check-ups",
	},
	"Fibromyalgia": {
		"Manage stress",
		"Exercise regularly",
		"Get adequate rest",
		"Avoid overexertion",
		"Eat a balanced, anti-inflammatory diet",
	},
	"Celiac Disease": {
		"Avoid gluten-containing foods",
		"Follow a gluten-free diet strictly",
		"Read food labels carefully",
		"Seek regular medical check-ups",
		"Be cautious of cross-contamination",
	},
	"Crohns Disease": {
		"Eat a balanced diet",
		"Avoid smoking",
		"Manage stress",
		"Take medications as prescribed",
		"Stay hydrated",
	},
	"Ulcerative Colitis": {
		"Eat a healthy, balanced diet",
		"Avoid triggers (e.g., high-fat, spicy foods)",
		"Take medications as prescribed",
		"Manage stress",
		"Stay hydrated",
	},
	"Hypothyroidism": {
		"Take thyroid medication as prescribed",
		"Monitor thyroid function regularly",
		"Maintain a healthy diet",
		"Exercise regularly",
		"Manage stress",
	},
	"Hyperthyroidism": {
		"Take prescribed medications",
		"Avoid excessive iodine intake",
		"Monitor thyroid function regularly",
		"Engage in regular physical activity",
		"Manage stress",
	},
	"Anemia": {
		"Eat iron-rich foods",
		"Take iron supplements if prescribed",
		"Avoid excessive tea or coffee with meals",
		"Maintain a healthy diet",
		"Stay hydrated",
	},
	"Psoriasis": {
		"Avoid skin irritants",
		"Maintain a healthy skin care routine",
		"Use prescribed topical treatments",
		"Stay hydrated",
		"Manage stress",
	},
	"Eczema": {
		"Avoid skin irritants and allergens",
		"Use moisturizing lotions regularly",
		"Avoid scratching",
		"Use prescribed treatments",
		"Keep the skin clean and hydrated",
	},
	"Skin Cancer": {
		"Avoid excessive sun exposure",
		"Wear sunscreen regularly",
		"Check skin regularly for abnormalities",
		"Seek regular skin check-ups",
		"Wear protective clothing",
	},
	"Lung Cancer": {
		"Avoid smoking and secondhand smoke",
		"Follow a healthy diet",
		"Engage in regular physical activity",
		"Avoid exposure to harmful chemicals",
		"Get regular health check-ups",
	},
	"Breast Cancer": {
		"Get regular mammograms",
		"Maintain a healthy weight",
		"Exercise regularly",
		"Limit alcohol intake",
		"Avoid smoking",
	},
	"Prostate Cancer": {
		"Get regular prostate exams",
		"Maintain a healthy diet",
		"Exercise regularly",
		"Limit alcohol intake",
		"Avoid smoking",
	},
	"Leukemia": {
		"Avoid known carcinogens",
		"Maintain a healthy lifestyle",
		"Stay up to date on vaccinations",
		"Avoid exposure to harmful chemicals",
		"Seek medical advice if symptoms occur",
	},
	"Lymphoma": {
		"Avoid known carcinogens",
		"Maintain a healthy lifestyle",
		"Get regular check-ups",
		"Stay up to date on vaccinations",
		"Avoid exposure to harmful chemicals",
	},
	"Hepatitis A": {
		"Get vaccinated for Hepatitis A",
		"Practice good hand hygiene",
		"Avoid drinking contaminated water",
		"Avoid consuming unclean food",
		"Get regular health check-ups",
	},
	"Hepatitis B": {
		"Get vaccinated for Hepatitis B",
		"Avoid sharing needles or personal items",
		"Practice safe sex",
		"Get regular liver function tests",
		"Avoid alcohol and excessive medications",
	},
	"Hepatitis C": {
		"Avoid sharing needles",
		"Get tested for Hepatitis C",
		"Avoid alcohol and excessive medications",
		"Practice safe sex",
		"Get regular liver function tests",
	},
	"Chronic Kidney Disease": {
		"Manage blood pressure",
		"Monitor blood sugar levels",
		"Avoid smoking and excessive alcohol consumption",
		"Eat a kidney-friendly diet",
		"Stay hydrated",
	},
	"Irritable Bowel Syndrome": {
		"Eat a balanced diet",
		"Avoid triggers (e.g., high-fat foods)",
		"Exercise regularly",
		"Manage stress",
		"Stay hydrated",
	},
	"Gout": {
		"Limit alcohol intake",
		"Avoid foods high in purines",
		"Maintain a healthy weight",
		"Drink plenty of water",
		"Take medications as prescribed",
	},
	"Acid Reflux": {
		"Avoid large meals and lying down after eating",
		"Eat smaller, more frequent meals",
		"Avoid trigger foods",
		"Maintain a healthy weight",
		"Elevate the head of the bed",
	},
	"Peptic Ulcer": {
		"Avoid spicy foods",
		"Limit alcohol intake",
		"Quit smoking",
		"Take medications as prescribed",
		"Eat smaller, more frequent meals",
	},
	"Endometriosis": {
		"Manage stress",
		"Exercise regularly",
		"Eat a balanced diet",
		"Take medications as prescribed",
		"Consider fertility treatment if needed",
	},
	"Polycystic Ovary Syndrome (PCOS)": {
		"Maintain a healthy weight",
		"Exercise regularly",
		"Eat a balanced diet",
		"Take medications as prescribed",
		"Manage stress",
	},
	"Ovarian Cyst": {
		"Monitor symptoms",
		"Follow up with healthcare provider regularly",
		"Exercise regularly",
		"Eat a balanced diet",
		"Take prescribed medications",
	},
	"Heart Disease": {
		"Maintain a healthy weight",
		"Exercise regularly",
		"Follow a heart-healthy diet",
		"Avoid smoking",
		"Manage stress",
	},
	"Stroke": {
		"Control blood pressure",
		"Maintain a healthy weight",
		"Exercise regularly",
		"Avoid smoking and excessive alcohol",
		"Eat a healthy diet",
	},
	"Peripheral Artery Disease": {
		"Exercise regularly",
		"Maintain a healthy weight",
		"Control blood pressure and cholesterol levels",
		"Quit smoking",
		"Eat a healthy diet",
	},
	"Deep Vein Thrombosis": {
		"Stay active and exercise regularly",
		"Avoid prolonged sitting or standing",
		"Wear compression stockings",
		"Take blood-thinning medications if prescribed",
		"Drink plenty of water",
	},
	"Obesity": {
		"Maintain a healthy weight",
		"Exercise regularly",
		"Eat a balanced diet",
		"Get enough sleep",
		"Manage stress",
	},
	"Insomnia": {
		"Maintain a consistent sleep schedule",
		"Create a calming bedtime routine",
		"Avoid caffeine and heavy meals before bed",
		"Create a comfortable sleep environment",
		"Exercise regularly",
	},
	"Sleep Apnea": {
		"Maintain a healthy weight",
		"Sleep on your side",
		"Avoid alcohol and sedatives before sleep",
		"Use CPAP machine as prescribed",
		"Avoid smoking",
	},
	"Vertigo": {
		"Practice balance exercises",
		"Avoid sudden head movements",
		"Stay hydrated",
		"Avoid alcohol",
		"Seek medical attention if symptoms persist",
	},
	"HIV/AIDS": {
		"Practice safe sex",
		"Get tested regularly",
		"Take antiretroviral medications as prescribed",
		"Avoid sharing needles",
		"Maintain a healthy lifestyle",
	},
	"Chikungunya": {
		"Use mosquito repellents",
		"Wear protective clothing",
		"Eliminate mosquito breeding sites",
		"Stay indoors during peak mosquito activity hours",
		"Use mosquito nets",
	},
	"Zika Virus": {
		"Use mosquito repellents",
		"Wear protective clothing",
		"Eliminate mosquito breeding grounds",
		"Avoid travel to areas with outbreaks",
		"Use mosquito nets",
	},
	"Typhoid": {
		"Drink safe water",
		"Eat food from hygienic sources",
		"Practice good hand hygiene",
		"Get vaccinated for Typhoid",
		"Avoid unclean water",
	},
	"Measles": {
		"Get vaccinated for measles",
		"Avoid close contact with infected individuals",
		"Practice good hand hygiene",
		"Stay up-to-date on vaccinations",
		"Seek medical attention if symptoms develop",
	},
	"Mumps": {
		"Get vaccinated for mumps",
		"Avoid sharing personal items",
		"Practice good hand hygiene",
		"Isolate infected individuals",
		"Seek medical attention if symptoms develop",
	},
	"Rubella": {
		"Get vaccinated for rubella",
		"Avoid exposure to infected individuals",
		"Practice good hand hygiene",
		"Stay up to date on vaccinations",
		"Seek medical attention if symptoms occur",
	},
	"Chickenpox": {
		"Get vaccinated for chickenpox",
		"Avoid scratching the rash",
		"Isolate infected individuals",
		"Practice good hand hygiene",
		"Use anti-itch treatments as prescribed",
	},
	"Shingles": {
		"Get vaccinated for shingles",
		"Avoid contact with people who have weakened immune systems",
		"Practice good hand hygiene",
		"Avoid scratching the rash",
		"Use prescribed antiviral medications",
	},
	"Scarlet Fever": {
		"Get treatment for strep throat promptly",
		"Practice good hand hygiene",
		"Avoid close contact with infected individuals",
		"Seek medical attention if symptoms occur",
		"Isolate infected individuals",
	},
	"Whooping Cough": {
		"Get vaccinated for whooping cough",
		"Avoid close contact with infected individuals",
		"Practice good hand hygiene",
		"Isolate infected individuals",
		"Get treatment if symptoms occur",
	},
	"Huntingtons Disease": {
		"Genetic counseling",
		"Regular check-ups",
		"Stay active mentally and physically",
		"Seek family support",
		"Manage symptoms with prescribed treatments",
	},
	"Amyotrophic Lateral Sclerosis (ALS)": {
		"Seek early diagnosis and support",
		"Maintain muscle strength through exercise",
		"Consider physical therapy",
		"Maintain a balanced diet",
		"Seek supportive care",
	},
	"Marfan Syndrome": {
		"Monitor cardiovascular health",
		"Avoid excessive physical exertion",
		"Take prescribed medications",
		"Get regular check-ups",
		"Maintain a healthy lifestyle",
	},
	"Hemophilia": {
		"Avoid injury or trauma",
		"Take prescribed clotting factor treatments",
		"Practice safe activities",
		"Monitor for signs of bleeding",
		"Stay up to date on medical care",
	},
	"Thalassemia": {
		"Regular blood transfusions if necessary",
		"Take iron chelation therapy",
		"Maintain a healthy diet",
		"Get regular check-ups",
		"Avoid excessive iron intake",
	},
	"Sickle Cell Anemia": {
		"Stay hydrated",
		"Avoid temperature extremes",
		"Avoid high altitudes",
		"Take prescribed pain management",
		"Follow up with regular medical check-ups",
	},
	"Vitamin D Deficiency": {
		"Get regular sun exposure",
		"Consume vitamin D-rich foods",
		"Take vitamin D supplements if prescribed",
		"Avoid excessive use of sunscreen",
		"Get blood tests to monitor vitamin D levels",
	},
	"Osteoporosis": {
		"Consume calcium-rich foods",
		"Engage in weight-bearing exercises",
		"Take prescribed calcium and vitamin D supplements",
		"Avoid smoking",
		"Avoid excessive alcohol consumption",
	},
	"Lymphedema": {
		"Engage in lymphatic massage",
		"Maintain a healthy weight",
		"Wear compression garments as prescribed",
		"Avoid injury to affected areas",
		"Seek regular medical advice",
	},
	"Raynaud’s Disease": {
		"Avoid cold temperatures",
		"Manage stress",
		"Wear warm gloves and socks",
		"Avoid smoking",
		"Exercise regularly",
	},
	"Addison’s Disease": {
		"Take prescribed corticosteroids",
		"Monitor for symptoms of low blood pressure",
		"Avoid stress",
		"Eat a balanced diet",
		"Get regular check-ups",
	},
	"Cystic Fibrosis": {
		"Take prescribed medications",
		"Engage in regular physical activity",
		"Maintain good nutrition",
		"Use prescribed chest physiotherapy",
		"Get regular medical check-ups",
	},
	"Panic Disorder": {
		"Practice relaxation techniques",
		"Avoid caffeine and alcohol",
		"Seek therapy",
		"Exercise regularly",
		"Avoid stress triggers",
	},
	"Obsessive-Compulsive Disorder (OCD)": {
		"Engage in cognitive-behavioral therapy",
		"Avoid stress triggers",
		"Take prescribed medications",
		"Practice mindfulness",
		"Maintain a consistent routine",
	},
	"Bipolar Disorder": {
		"Follow prescribed medication regimen",
		"Engage in therapy",
		"Maintain a stable sleep routine",
		"Avoid stress",
		"Stay active physically and socially",
	},
	"Schizophrenia": {
		"Take prescribed antipsychotic medications",
		"Engage in therapy",
		"Stay connected with support systems",
		"Maintain a healthy routine",
		"Avoid drugs and alcohol",
	},
	"Panic Attacks": {
		"Practice relaxation techniques",
		"Avoid stress triggers",
		"Seek professional counseling",
		"Maintain a healthy lifestyle",
		"Use prescribed medications if necessary",
	},
	"Autism Spectrum Disorder (ASD)": {
		"Engage in early intervention therapies",
		"Provide structured routines",
		"Encourage social interaction",
		"Support sensory processing needs",
		"Maintain consistent communication",
	},
}

// lifestyleAdvice only covers chronic conditions; the rest fall back.
var lifestyleAdvice = map[string][]string{
	"Hypertension": {
		"Regular exercise (30 minutes daily)",
		"Reduce salt intake",
		"Maintain healthy weight",
		"Limit alcohol consumption",
		"Practice stress management",
	},
	"Type 2 Diabetes": {
		"Regular blood sugar monitoring",
		"Balanced diet with controlled carbs",
		"Regular physical activity",
		"Weight management",
		"Foot care routine",
	},
}
