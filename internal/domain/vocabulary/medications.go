package vocabulary

// medications lists over-the-counter and prescribed treatments per condition.
// A few keys sit outside the catalog and are never looked up.
var medications = map[string][]string{
	"Common Cold": {
		"Paracetamol for fever and pain relief",
		"Decongestants like pseudoephedrine",
		"Cough suppressants containing dextromethorphan",
		"Antihistamines for runny nose",
		"Zinc supplements to boost immune system",
		"Vitamin C supplements",
	},
	"COVID-19": {
		"Paracetamol for fever",
		"Stay hydrated and rest",
		"Follow current medical guidelines",
		"Consult doctor for specific treatments",
		"Pulse oximeter monitoring",
		"Isolation protocols",
	},
	"Hypertension": {
		"ACE inhibitors as prescribed",
		"Beta blockers if recommended",
		"Calcium channel blockers",
		"Regular blood pressure monitoring",
		"Low-sodium diet essential",
		"Lifestyle modifications",
	},
	"Type 2 Diabetes": {
		"Metformin as prescribed",
		"Blood glucose monitoring",
		"Insulin if prescribed",
		"Strict dietary control",
		"Regular exercise routine",
		"Foot care essentials",
	},
	"Anxiety Disorder": {
		"SSRIs if prescribed",
		"Anti-anxiety medications",
		"Therapy sessions",
		"Stress management techniques",
		"Lifestyle modifications",
		"Sleep hygiene practices",
	},
	"Flu": {
		"Oseltamivir (Tamiflu) if prescribed",
		"Paracetamol or ibuprofen for fever",
		"Decongestants for nasal congestion",
		"Plenty of fluids and rest",
	},
	"Bronchitis": {
		"Expectorants to help clear mucus",
		"Cough suppressants for sleep",
		"Bronchodilators if prescribed",
		"Steam inhalation",
	},
	"Pneumonia": {
		"Prescribed antibiotics if bacterial",
		"Pain relievers for chest pain",
		"Cough medicine",
		"Immediate medical attention required",
	},
	"Allergies": {
		"Antihistamines (e.g., cetirizine, loratadine)",
		"Nasal corticosteroids if prescribed",
		"Decongestants for blocked nose",
		"Avoid known allergens",
	},
	"Asthma": {
		"Inhaled bronchodilators",
		"Prescribed corticosteroids",
		"Peak flow monitoring",
		"Follow asthma action plan",
	},
	"Migraine": {
		"Pain relievers (ibuprofen, aspirin)",
		"Anti-migraine medications if prescribed",
		"Rest in a quiet, dark room",
		"Stay hydrated",
	},
	"Sinus Infection": {
		"Saline nasal spray",
		"Decongestants",
		"Pain relievers",
		"Antibiotics if prescribed",
	},
	"Tuberculosis": {
		"Prescribed TB medications only",
		"Complete full course of treatment",
		"Regular medical monitoring",
		"Immediate medical attention required",
	},
	"Malaria": {
		"Prescribed antimalarial medications",
		"Fever reducers",
		"Immediate medical attention required",
		"Complete prescribed course",
	},
	"Dengue": {
		"Paracetamol for fever (avoid aspirin)",
		"Plenty of fluids",
		"Rest and monitoring",
		"Immediate medical attention required",
	},
	"Gastroenteritis": {
		"Oral rehydration solutions",
		"Anti-diarrheal medication if needed",
		"Bland diet (BRAT)",
		"Probiotics may help",
	},
	"Chronic Fatigue Syndrome": {
		"Pain relievers as needed",
		"Sleep medications if prescribed",
		"Antidepressants if prescribed",
		"Professional medical supervision required",
	},
	"Rheumatoid Arthritis": {
		"Nonsteroidal anti-inflammatory drugs (NSAIDs)",
		"Disease-modifying antirheumatic drugs (DMARDs)",
		"Biologic agents if prescribed",
		"Corticosteroids for flare-ups",
		"Physical therapy for joint mobility",
	},
	"Osteoarthritis": {
		"Acetaminophen for pain relief",
		"NSAIDs for inflammation",
		"Topical analgesics",
		"Glucosamine supplements",
		"Physical therapy and exercise",
	},
	"Multiple Sclerosis": {
		"Disease-modifying therapies (DMTs)",
		"Corticosteroids for relapses",
		"Muscle relaxants for spasms",
		"Pain relievers for neuropathic pain",
		"Lifestyle changes and physical therapy",
	},
	"Parkinsons Disease": {
		"Levodopa/carbidopa",
		"Dopamine agonists",
		"MAO-B inhibitors",
		"Anticholinergics for tremors",
		"Physiotherapy for movement issues",
	},
	"Alzheimers Disease": {
		"Cholinesterase inhibitors (e.g., donepezil)",
		"Memantine for moderate-to-severe stages",
		"Antidepressants or antipsychotics if prescribed",
		"Cognitive and behavioral therapies",
	},
	"Epilepsy": {
		"Antiepileptic drugs (AEDs)",
		"Emergency treatment for seizures",
		"Lifestyle changes to avoid triggers",
		"Regular medical supervision",
	},
	"Lupus": {
		"NSAIDs for joint pain",
		"Antimalarial drugs (e.g., hydroxychloroquine)",
		"Corticosteroids for inflammation",
		"Immunosuppressants if prescribed",
		"Regular medical monitoring",
	},
	"Fibromyalgia": {
		"Pain relievers (e.g., acetaminophen)",
		"Antidepressants for symptom management",
		"Anti-seizure medications",
		"Physical therapy and stress management",
	},
	"Celiac Disease": {
		"Strict gluten-free diet",
		"Nutritional supplements if needed",
		"Consultation with a dietitian",
		"Medical supervision for complications",
	},
	"Crohns Disease": {
		"Anti-inflammatory medications (e.g., corticosteroids)",
		"Immunosuppressants",
		"Antibiotics for infections",
		"Dietary adjustments and nutritional supplements",
	},
	"Ulcerative Colitis": {
		"5-aminosalicylic acid (5-ASA) medications",
		"Corticosteroids for flares",
		"Immunomodulators if prescribed",
		"Dietary changes and stress management",
	},
	"Hypothyroidism": {
		"Levothyroxine (thyroid hormone replacement)",
		"Regular thyroid function tests",
		"Lifestyle adjustments as needed",
	},
	"Hyperthyroidism": {
		"Antithyroid medications (e.g., methimazole)",
		"Beta-blockers for symptoms",
		"Radioactive iodine therapy",
		"Regular monitoring of thyroid levels",
	},
	"Anemia": {
		"Iron supplements for iron-deficiency anemia",
		"Vitamin B12 supplements for pernicious anemia",
		"Folate supplements if needed",
		"Dietary changes to include iron-rich foods",
	},
	"Psoriasis": {
		"Topical corticosteroids",
		"Vitamin D analogues (e.g., calcipotriol)",
		"Phototherapy (light therapy)",
		"Systemic medications for severe cases",
	},
	"Eczema": {
		"Moisturizers for dry skin",
		"Topical corticosteroids for inflammation",
		"Antihistamines for itch relief",
		"Avoiding known irritants or allergens",
	},
	"Glaucoma": {
		"Prescription eye drops (e.g., prostaglandin analogues)",
		"Beta-blockers for intraocular pressure",
		"Surgical options if necessary",
		"Regular eye check-ups",
	},
	"Lung Cancer": {
		"Chemotherapy or targeted therapy",
		"Radiation therapy",
		"Immunotherapy if prescribed",
		"Palliative care for symptom management",
	},
	"Breast Cancer": {
		"Hormonal therapy (e.g., tamoxifen)",
		"Chemotherapy as recommended",
		"Targeted therapy (e.g., HER2 inhibitors)",
		"Surgery or radiation therapy",
	},
	"Prostate Cancer": {
		"Androgen deprivation therapy",
		"Radiation therapy",
		"Chemotherapy for advanced stages",
		"Active surveillance for early cases",
	},
	"Hepatitis": {
		"Antiviral medications for hepatitis B or C",
		"Vaccination for hepatitis prevention",
		"Liver function monitoring",
		"Lifestyle changes to reduce liver strain",
	},
	"Kidney Stones": {
		"Pain relievers for acute pain",
		"Alpha blockers to relax ureter muscles",
		"Increased fluid intake",
		"Lithotripsy or surgery if necessary",
	},
	"Ovarian Cysts": {
		"Pain relievers for discomfort",
		"Hormonal birth control for prevention",
		"Surgical removal if cysts are large",
		"Regular monitoring via ultrasound",
	},
	"UTI": {
		"Antibiotics as prescribed",
		"Increased water intake",
		"Urinary analgesics for pain relief",
		"Good personal hygiene practices",
	},
	"Pancreatitis": {
		"Pain management in acute cases",
		"IV fluids and fasting for severe cases",
		"Enzyme supplements for chronic cases",
		"Lifestyle changes (e.g., alcohol cessation)",
	},
	"Meningitis": {
		"Emergency medical attention required",
		"Prescribed antibiotics if bacterial",
		"Pain relief medication",
		"Hospital treatment necessary",
	},
}
