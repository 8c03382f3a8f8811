package vocab

import (
	"maps"
	"slices"
)

// Shared lists for synthetic data generation.

// Default returns a fresh copy of the built-in vocabulary.
func Default() *Vocabulary {
	v := &Vocabulary{
		Departments:        slices.Clone(departments),
		Diagnoses:          slices.Clone(diagnoses),
		Medications:        slices.Clone(medications),
		Procedures:         slices.Clone(procedures),
		InsuranceProviders: slices.Clone(insuranceProviders),
		BloodTypes:         slices.Clone(bloodTypes),
		VisitTypes:         slices.Clone(visitTypes),
		PaymentStatuses:    slices.Clone(paymentStatuses),
		EducationLevels:    slices.Clone(educationLevels),
		EmploymentTypes:    slices.Clone(employmentTypes),
		TerminationReasons: slices.Clone(terminationReasons),
	}
	for _, d := range hrDepartments {
		titles := make(map[string][]string, len(d.Titles))
		for level, t := range d.Titles {
			titles[level] = slices.Clone(t)
		}
		v.HRDepartments = append(v.HRDepartments, HRDepartment{Name: d.Name, Titles: titles})
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

var departments = []string{
	"Cardiology", "Dermatology", "Emergency Medicine", "Endocrinology",
	"Gastroenterology", "General Surgery", "Internal Medicine", "Nephrology",
	"Neurology", "Obstetrics and Gynecology", "Oncology", "Ophthalmology",
	"Orthopedics", "Otolaryngology", "Pediatrics", "Psychiatry",
	"Pulmonology", "Radiology", "Rheumatology", "Urology",
}

var diagnoses = []Diagnosis{
	{"I10", "Essential (primary) hypertension"},
	{"E11.9", "Type 2 diabetes mellitus without complications"},
	{"E78.5", "Hyperlipidemia, unspecified"},
	{"J45.909", "Unspecified asthma, uncomplicated"},
	{"J44.9", "Chronic obstructive pulmonary disease, unspecified"},
	{"J20.9", "Acute bronchitis, unspecified"},
	{"J18.9", "Pneumonia, unspecified organism"},
	{"J06.9", "Acute upper respiratory infection, unspecified"},
	{"K21.9", "Gastro-esophageal reflux disease without esophagitis"},
	{"K27.9", "Peptic ulcer, unspecified"},
	{"K58.9", "Irritable bowel syndrome without diarrhea"},
	{"N18.3", "Chronic kidney disease, stage 3"},
	{"N17.9", "Acute kidney failure, unspecified"},
	{"N39.0", "Urinary tract infection, site not specified"},
	{"M19.90", "Unspecified osteoarthritis, unspecified site"},
	{"M06.9", "Rheumatoid arthritis, unspecified"},
	{"M81.0", "Age-related osteoporosis without current pathological fracture"},
	{"M54.5", "Low back pain"},
	{"M54.3", "Sciatica"},
	{"G43.909", "Migraine, unspecified"},
	{"G44.209", "Tension-type headache, unspecified"},
	{"F32.9", "Major depressive disorder, single episode, unspecified"},
	{"F41.1", "Generalized anxiety disorder"},
	{"F31.9", "Bipolar disorder, unspecified"},
	{"G47.00", "Insomnia, unspecified"},
	{"J30.2", "Other seasonal allergic rhinitis"},
	{"J32.9", "Chronic sinusitis, unspecified"},
	{"L20.9", "Atopic dermatitis, unspecified"},
	{"L40.0", "Psoriasis vulgaris"},
	{"L03.90", "Cellulitis, unspecified"},
	{"B02.9", "Zoster without complications"},
	{"E05.90", "Thyrotoxicosis, unspecified"},
	{"E03.9", "Hypothyroidism, unspecified"},
	{"D50.9", "Iron deficiency anemia, unspecified"},
	{"E55.9", "Vitamin D deficiency, unspecified"},
	{"M10.9", "Gout, unspecified"},
	{"G62.9", "Polyneuropathy, unspecified"},
	{"I63.9", "Cerebral infarction, unspecified"},
	{"G45.9", "Transient cerebral ischemic attack, unspecified"},
	{"I25.10", "Atherosclerotic heart disease of native coronary artery"},
	{"I50.9", "Heart failure, unspecified"},
	{"I48.91", "Unspecified atrial fibrillation"},
	{"I20.9", "Angina pectoris, unspecified"},
	{"I21.9", "Acute myocardial infarction, unspecified"},
	{"I26.99", "Other pulmonary embolism without acute cor pulmonale"},
	{"I82.409", "Acute embolism and thrombosis of deep veins of lower extremity"},
	{"A41.9", "Sepsis, unspecified organism"},
	{"K80.20", "Calculus of gallbladder without cholecystitis"},
	{"K85.90", "Acute pancreatitis, unspecified"},
	{"K76.0", "Fatty (change of) liver, not elsewhere classified"},
	{"K35.80", "Unspecified acute appendicitis"},
	{"K57.30", "Diverticulosis of large intestine"},
	{"K59.00", "Constipation, unspecified"},
	{"K51.90", "Ulcerative colitis, unspecified"},
	{"K50.90", "Crohn's disease, unspecified"},
	{"H66.90", "Otitis media, unspecified"},
	{"H93.19", "Tinnitus, unspecified ear"},
	{"N40.0", "Benign prostatic hyperplasia"},
	{"N80.9", "Endometriosis, unspecified"},
	{"E28.2", "Polycystic ovarian syndrome"},
	{"H10.9", "Unspecified conjunctivitis"},
	{"H40.9", "Unspecified glaucoma"},
	{"H26.9", "Unspecified cataract"},
	{"G40.909", "Epilepsy, unspecified"},
	{"G20", "Parkinson's disease"},
	{"G30.9", "Alzheimer's disease, unspecified"},
	{"S72.90XA", "Unspecified fracture of unspecified femur, initial encounter"},
	{"S52.90XA", "Unspecified fracture of unspecified forearm, initial encounter"},
	{"S93.409A", "Sprain of unspecified ligament of unspecified ankle"},
	{"U07.1", "COVID-19"},
	{"J11.1", "Influenza with other respiratory manifestations"},
	{"J03.90", "Acute tonsillitis, unspecified"},
	{"T78.40XA", "Allergy, unspecified, initial encounter"},
	{"R21", "Rash and other nonspecific skin eruption"},
}

var medications = []string{
	"Atorvastatin", "Levothyroxine", "Lisinopril", "Metformin", "Amlodipine",
	"Metoprolol", "Omeprazole", "Simvastatin", "Losartan", "Albuterol",
	"Gabapentin", "Hydrochlorothiazide", "Sertraline", "Furosemide", "Fluticasone",
	"Acetaminophen", "Prednisone", "Tramadol", "Amoxicillin", "Pantoprazole",
	"Citalopram", "Cetirizine", "Trazodone", "Clopidogrel", "Atenolol",
	"Rosuvastatin", "Escitalopram", "Bupropion", "Duloxetine", "Warfarin",
	"Insulin Glargine", "Insulin Aspart", "Glimepiride", "Sitagliptin",
	"Spironolactone", "Pravastatin", "Pioglitazone", "Nitrofurantoin", "Allopurinol",
	"Amiodarone", "Doxycycline", "Cefuroxime", "Levofloxacin", "Azithromycin",
	"Ceftriaxone", "Vancomycin", "Fluconazole", "Metronidazole", "Budesonide",
	"Tiotropium", "Ropinirole", "Pramipexole", "Clonidine", "Lorazepam",
	"Alprazolam", "Buspirone", "Hydralazine", "Methotrexate", "Tamsulosin",
	"Ondansetron", "Propranolol", "Acyclovir", "Valacyclovir", "Carvedilol",
	"Rivaroxaban", "Apixaban", "Digoxin", "Empagliflozin", "Naproxen", "Meloxicam",
}

var procedures = []string{
	"None", "Blood panel", "Urinalysis", "Electrocardiogram", "Chest X-ray",
	"CT scan", "MRI", "Ultrasound", "Echocardiogram", "Colonoscopy",
	"Endoscopy", "Biopsy", "Wound suturing", "Cast application",
	"Physical therapy session", "Vaccination", "Spirometry", "Allergy testing",
	"Cardiac catheterization", "Appendectomy", "Cholecystectomy",
	"Joint injection", "Dialysis", "Lumbar puncture", "IV fluid therapy",
}

var insuranceProviders = []string{
	"Aetna", "Blue Cross Blue Shield", "Cigna", "Humana", "Kaiser Permanente",
	"Medicaid", "Medicare", "UnitedHealthcare", "Anthem", "Molina Healthcare",
	"Self-pay",
}

var bloodTypes = []Weighted{
	{"O+", 37.4}, {"O-", 6.6}, {"A+", 35.7}, {"A-", 6.3},
	{"B+", 8.5}, {"B-", 1.5}, {"AB+", 3.4}, {"AB-", 0.6},
}

var visitTypes = []Weighted{
	{"Outpatient", 60}, {"Emergency", 20}, {"Inpatient", 15}, {"Telehealth", 5},
}

var paymentStatuses = []Weighted{
	{"Paid", 65}, {"Pending", 20}, {"Partially Paid", 10}, {"Denied", 5},
}

var educationLevels = []string{
	"High School", "Associate Degree", "Bachelor's Degree", "Master's Degree", "Doctorate",
}

var employmentTypes = []Weighted{
	{"Full-time", 80}, {"Part-time", 12}, {"Contract", 6}, {"Intern", 2},
}

var terminationReasons = []string{
	"Resignation", "Layoff", "Performance", "Relocation", "Career Change",
	"Misconduct", "End of Contract", "Health Reasons",
}

func levelTitles(entry, associate, senior, manager, director, executive []string) map[string][]string {
	return map[string][]string{
		LevelEntry:     entry,
		LevelAssociate: associate,
		LevelSenior:    senior,
		LevelManager:   manager,
		LevelDirector:  director,
		LevelExecutive: executive,
	}
}

var hrDepartments = []HRDepartment{
	{"Engineering", levelTitles(
		[]string{"Junior Software Engineer", "QA Analyst"},
		[]string{"Software Engineer", "DevOps Engineer", "QA Engineer"},
		[]string{"Senior Software Engineer", "Staff Engineer", "Site Reliability Engineer"},
		[]string{"Engineering Manager"},
		[]string{"Director of Engineering"},
		[]string{"VP of Engineering", "Chief Technology Officer"},
	)},
	{"Sales", levelTitles(
		[]string{"Sales Development Representative"},
		[]string{"Account Executive"},
		[]string{"Senior Account Executive", "Key Account Manager"},
		[]string{"Sales Manager"},
		[]string{"Director of Sales"},
		[]string{"VP of Sales", "Chief Revenue Officer"},
	)},
	{"Marketing", levelTitles(
		[]string{"Marketing Coordinator"},
		[]string{"Marketing Specialist", "Content Strategist"},
		[]string{"Senior Marketing Specialist", "Brand Manager"},
		[]string{"Marketing Manager"},
		[]string{"Director of Marketing"},
		[]string{"VP of Marketing", "Chief Marketing Officer"},
	)},
	{"Finance", levelTitles(
		[]string{"Accounting Clerk"},
		[]string{"Accountant", "Financial Analyst"},
		[]string{"Senior Accountant", "Senior Financial Analyst"},
		[]string{"Finance Manager", "Controller"},
		[]string{"Director of Finance"},
		[]string{"VP of Finance", "Chief Financial Officer"},
	)},
	{"Human Resources", levelTitles(
		[]string{"HR Assistant"},
		[]string{"HR Generalist", "Recruiter"},
		[]string{"Senior Recruiter", "HR Business Partner"},
		[]string{"HR Manager"},
		[]string{"Director of People"},
		[]string{"VP of Human Resources", "Chief People Officer"},
	)},
	{"Operations", levelTitles(
		[]string{"Operations Assistant"},
		[]string{"Operations Analyst", "Logistics Coordinator"},
		[]string{"Senior Operations Analyst"},
		[]string{"Operations Manager"},
		[]string{"Director of Operations"},
		[]string{"VP of Operations", "Chief Operating Officer"},
	)},
	{"Customer Support", levelTitles(
		[]string{"Support Representative"},
		[]string{"Support Specialist"},
		[]string{"Senior Support Specialist", "Technical Support Engineer"},
		[]string{"Support Manager"},
		[]string{"Director of Customer Experience"},
		[]string{"VP of Customer Success"},
	)},
	{"Legal", levelTitles(
		[]string{"Legal Assistant"},
		[]string{"Paralegal"},
		[]string{"Corporate Counsel"},
		[]string{"Legal Manager"},
		[]string{"Associate General Counsel"},
		[]string{"General Counsel"},
	)},
}
