package vocabulary

import "github.com/gregory-bot/telecurehospital/internal/domain/entities"

// conditionNames is the ordered condition catalog. Order fixes the index of
// every classifier output.
var conditionNames = []string{
	"Common Cold", "COVID-19", "Flu", "Bronchitis",
	"Pneumonia", "Allergies", "Asthma", "Migraine",
	"Sinus Infection", "Tuberculosis", "Malaria", "Dengue",
	"Gastroenteritis", "Chronic Fatigue Syndrome", "Meningitis", "Hypertension",
	"Type 2 Diabetes", "Anxiety Disorder", "Depression", "Rheumatoid Arthritis",
	"Osteoarthritis", "Multiple Sclerosis", "Parkinsons Disease", "Alzheimers Disease",
	"Epilepsy", "Lupus", "Fibromyalgia", "Celiac Disease",
	"Crohns Disease", "Ulcerative Colitis", "Hypothyroidism", "Hyperthyroidism",
	"Anemia", "Psoriasis", "Eczema", "Skin Cancer",
	"Lung Cancer", "Breast Cancer", "Prostate Cancer", "Leukemia",
	"Lymphoma", "Hepatitis A", "Hepatitis B", "Hepatitis C",
	"Chronic Kidney Disease", "Irritable Bowel Syndrome", "Gout", "Acid Reflux",
	"Peptic Ulcer", "Endometriosis", "Polycystic Ovary Syndrome (PCOS)", "Ovarian Cyst",
	"Heart Disease", "Stroke", "Peripheral Artery Disease", "Deep Vein Thrombosis",
	"Obesity", "Insomnia", "Sleep Apnea", "Vertigo",
	"HIV/AIDS", "Chikungunya", "Zika Virus", "Typhoid",
	"Measles", "Mumps", "Rubella", "Chickenpox",
	"Shingles", "Scarlet Fever", "Whooping Cough", "Huntingtons Disease",
	"Amyotrophic Lateral Sclerosis (ALS)", "Marfan Syndrome", "Hemophilia", "Thalassemia",
	"Sickle Cell Anemia", "Vitamin D Deficiency", "Osteoporosis", "Lymphedema",
	"Raynaud’s Disease", "Addison’s Disease", "Cystic Fibrosis", "Panic Disorder",
	"Obsessive-Compulsive Disorder (OCD)", "Bipolar Disorder", "Schizophrenia", "Panic Attacks",
	"Autism Spectrum Disorder (ASD)",
}

// feeSchedules holds consultation fees in Kenyan shillings. Every catalog
// condition needs an entry; Load refuses to start otherwise.
var feeSchedules = map[string]entities.ConsultationFees{
	"Common Cold":                         {Initial: 300, FollowUp: 200, Emergency: 800},
	"COVID-19":                            {Initial: 2000, FollowUp: 1000, Emergency: 5000, Specialist: 3500},
	"Flu":                                 {Initial: 400, FollowUp: 250, Emergency: 1000},
	"Bronchitis":                          {Initial: 450, FollowUp: 300, Emergency: 1200, Specialist: 2000},
	"Pneumonia":                           {Initial: 600, FollowUp: 400, Emergency: 2500, Specialist: 3000},
	"Allergies":                           {Initial: 350, FollowUp: 250, Specialist: 1800},
	"Asthma":                              {Initial: 500, FollowUp: 350, Emergency: 1500, Specialist: 2500},
	"Migraine":                            {Initial: 400, FollowUp: 300, Emergency: 1200, Specialist: 2000},
	"Sinus Infection":                     {Initial: 350, FollowUp: 250, Specialist: 1800},
	"Tuberculosis":                        {Initial: 5000, FollowUp: 2500, Specialist: 6000},
	"Malaria":                             {Initial: 550, FollowUp: 400, Emergency: 2000},
	"Dengue":                              {Initial: 6000, FollowUp: 4500, Emergency: 8000, Specialist: 7000},
	"Gastroenteritis":                     {Initial: 4500, FollowUp: 3000, Emergency: 6000},
	"Chronic Fatigue Syndrome":            {Initial: 6500, FollowUp: 4000, Specialist: 7500},
	"Meningitis":                          {Initial: 8000, FollowUp: 6000, Emergency: 12000, Specialist: 10000},
	"Hypertension":                        {Initial: 3000, FollowUp: 1500, Emergency: 5000, Specialist: 4000},
	"Type 2 Diabetes":                     {Initial: 3500, FollowUp: 2000, Specialist: 4500},
	"Anxiety Disorder":                    {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Depression":                          {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Rheumatoid Arthritis":                {Initial: 5000, FollowUp: 3000, Specialist: 6000},
	"Osteoarthritis":                      {Initial: 4500, FollowUp: 3000, Specialist: 5500},
	"Multiple Sclerosis":                  {Initial: 6000, FollowUp: 4000, Specialist: 7500},
	"Parkinsons Disease":                  {Initial: 7000, FollowUp: 5000, Specialist: 8500},
	"Alzheimers Disease":                  {Initial: 8000, FollowUp: 6000, Specialist: 10000},
	"Epilepsy":                            {Initial: 6000, FollowUp: 4000, Emergency: 10000},
	"Lupus":                               {Initial: 5500, FollowUp: 3500, Specialist: 6500},
	"Fibromyalgia":                        {Initial: 5000, FollowUp: 3000, Specialist: 6000},
	"Celiac Disease":                      {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Crohns Disease":                      {Initial: 5500, FollowUp: 3500, Specialist: 6500},
	"Ulcerative Colitis":                  {Initial: 5500, FollowUp: 3500, Specialist: 6500},
	"Hypothyroidism":                      {Initial: 3000, FollowUp: 2000, Specialist: 4500},
	"Hyperthyroidism":                     {Initial: 3000, FollowUp: 2000, Specialist: 4500},
	"Anemia":                              {Initial: 2500, FollowUp: 1500, Specialist: 3500},
	"Psoriasis":                           {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Eczema":                              {Initial: 3500, FollowUp: 2000, Specialist: 4500},
	"Skin Cancer":                         {Initial: 10000, FollowUp: 7000, Specialist: 15000},
	"Lung Cancer":                         {Initial: 15000, FollowUp: 10000, Emergency: 20000, Specialist: 18000},
	"Breast Cancer":                       {Initial: 12000, FollowUp: 8000, Specialist: 16000},
	"Prostate Cancer":                     {Initial: 12000, FollowUp: 8000, Specialist: 16000},
	"Leukemia":                            {Initial: 15000, FollowUp: 10000, Specialist: 18000},
	"Lymphoma":                            {Initial: 14000, FollowUp: 9000, Specialist: 17000},
	"Hepatitis A":                         {Initial: 5000, FollowUp: 3000, Specialist: 7000},
	"Hepatitis B":                         {Initial: 6000, FollowUp: 4000, Specialist: 8000},
	"Hepatitis C":                         {Initial: 7000, FollowUp: 5000, Specialist: 9000},
	"Chronic Kidney Disease":              {Initial: 9000, FollowUp: 6000, Specialist: 12000},
	"Irritable Bowel Syndrome":            {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Gout":                                {Initial: 4500, FollowUp: 3000, Specialist: 5500},
	"Acid Reflux":                         {Initial: 3000, FollowUp: 2000, Specialist: 4000},
	"Peptic Ulcer":                        {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Endometriosis":                       {Initial: 7000, FollowUp: 5000, Specialist: 9000},
	"Polycystic Ovary Syndrome (PCOS)":    {Initial: 6000, FollowUp: 4000, Specialist: 8000},
	"Ovarian Cyst":                        {Initial: 5000, FollowUp: 3500, Specialist: 7500},
	"Heart Disease":                       {Initial: 8000, FollowUp: 6000, Emergency: 12000, Specialist: 10000},
	"Stroke":                              {Initial: 10000, FollowUp: 7000, Emergency: 15000},
	"Peripheral Artery Disease":           {Initial: 7000, FollowUp: 5000, Specialist: 9000},
	"Deep Vein Thrombosis":                {Initial: 6000, FollowUp: 4000, Specialist: 8000},
	"Obesity":                             {Initial: 3000, FollowUp: 2000, Specialist: 4500},
	"Insomnia":                            {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Sleep Apnea":                         {Initial: 5000, FollowUp: 3500, Specialist: 7500},
	"Vertigo":                             {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"HIV/AIDS":                            {Initial: 10000, FollowUp: 7000, Specialist: 15000},
	"Chikungunya":                         {Initial: 5000, FollowUp: 3500, Emergency: 7000},
	"Zika Virus":                          {Initial: 5000, FollowUp: 3500, Specialist: 7000},
	"Typhoid":                             {Initial: 6000, FollowUp: 4000, Emergency: 8000},
	"Measles":                             {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Mumps":                               {Initial: 3500, FollowUp: 2000, Specialist: 4500},
	"Rubella":                             {Initial: 3500, FollowUp: 2000, Specialist: 4500},
	"Chickenpox":                          {Initial: 3000, FollowUp: 2000, Specialist: 4000},
	"Shingles":                            {Initial: 4500, FollowUp: 3000, Specialist: 5500},
	"Scarlet Fever":                       {Initial: 3500, FollowUp: 2000, Specialist: 4500},
	"Whooping Cough":                      {Initial: 4000, FollowUp: 2500, Emergency: 6000, Specialist: 5000},
	"Huntingtons Disease":                 {Initial: 8000, FollowUp: 6000, Specialist: 10000},
	"Amyotrophic Lateral Sclerosis (ALS)": {Initial: 9000, FollowUp: 6500, Specialist: 11000},
	"Marfan Syndrome":                     {Initial: 7000, FollowUp: 5000, Specialist: 9000},
	"Hemophilia":                          {Initial: 7500, FollowUp: 5000, Emergency: 12000, Specialist: 9500},
	"Thalassemia":                         {Initial: 6500, FollowUp: 4500, Specialist: 8500},
	"Sickle Cell Anemia":                  {Initial: 6500, FollowUp: 4500, Emergency: 10000, Specialist: 8500},
	"Vitamin D Deficiency":                {Initial: 2500, FollowUp: 1500, Specialist: 3500},
	"Osteoporosis":                        {Initial: 5000, FollowUp: 3500, Specialist: 6500},
	"Lymphedema":                          {Initial: 5000, FollowUp: 3500, Specialist: 6500},
	"Raynaud’s Disease":                   {Initial: 4500, FollowUp: 3000, Specialist: 5500},
	"Addison’s Disease":                   {Initial: 6000, FollowUp: 4000, Emergency: 9000, Specialist: 7500},
	"Cystic Fibrosis":                     {Initial: 8000, FollowUp: 6000, Specialist: 10000},
	"Panic Disorder":                      {Initial: 4000, FollowUp: 2500, Specialist: 5000},
	"Obsessive-Compulsive Disorder (OCD)": {Initial: 4500, FollowUp: 3000, Specialist: 5500},
	"Bipolar Disorder":                    {Initial: 5000, FollowUp: 3500, Specialist: 6500},
	"Schizophrenia":                       {Initial: 6000, FollowUp: 4000, Emergency: 9000, Specialist: 7500},
	"Panic Attacks":                       {Initial: 3500, FollowUp: 2500, Emergency: 6000, Specialist: 5000},
	"Autism Spectrum Disorder (ASD)":      {Initial: 5500, FollowUp: 4000, Specialist: 7000},
}
