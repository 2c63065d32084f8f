package i18n

var table = map[Language]map[string]string{
	English: {
		// navigation
		"dashboard":         "Dashboard",
		"dataManagement":    "Data Management",
		"awwAwhData":        "AWW & AWH Data",
		"supportWorkerInfo": "Support Worker Info",
		"settings":          "Settings",
		"navigation":        "Navigation",

		// dashboard
		"totalRecords":     "Total Records",
		"awwWorkers":       "AWW Workers",
		"awhWorkers":       "AWH Workers",
		"supportWorkers":   "Support Workers",
		"recentActivity":   "Recent Activity",
		"totalStudents":    "Total Students",
		"totalSchools":     "Total Schools",
		"totalBlocks":      "Total Blocks",
		"totalClusters":    "Total Clusters",
		"totalTeachers":    "Total Teachers",
		"neverReuploaded":  "Never Re-uploaded",
		"pendingReupload":  "Pending Re-upload",
		"reuploadDue":      "Re-upload Due",
		"assignedTeachers": "Assigned Teachers",
		"assignedStudents": "Assigned Students",
		"assignedSchools":  "Assigned Schools",

		// settings
		"language":       "Language",
		"selectLanguage": "Select Language",
		"english":        "English",
		"hindi":          "Hindi",
		"save":           "Save",

		"appTitle": "Pathshala Admin Panel",

		// records
		"schools":             "Schools",
		"students":            "Students",
		"teachers":            "Teachers",
		"schoolName":          "School Name",
		"studentName":         "Student Name",
		"teacherName":         "Teacher Name",
		"udiseCode":           "UDISE Code",
		"district":            "District",
		"block":               "Block",
		"cluster":             "Cluster",
		"class":               "Class",
		"treeName":            "Tree Name",
		"mobile":              "Mobile",
		"username":            "Username",
		"studentCount":        "Students",
		"verified":            "Verified",
		"notVerified":         "Not Verified",
		"reuploadCount":       "Re-uploads",
		"lastReuploadDate":    "Last Re-upload",
		"address":             "Address",
		"grade":               "Grade",
		"age":                 "Age",
		"guardianName":        "Guardian Name",
		"noRecords":           "No records found",
		"showingRecords":      "Showing",
		"of":                  "of",
		"loginSuccess":        "Logged in",
		"logoutSuccess":       "Logged out",
		"notLoggedIn":         "Not logged in",
		"verificationSaved":   "Verification updated",
		"exportSaved":         "Export saved",
		"sector":              "Sector",
		"center":              "Center",
		"anganwadiCenterName": "Anganwadi Center Name",
		"dob":                 "Date of Birth",
		"contact":             "Contact",
		"accountNumber":       "Account Number",
		"bankCode":            "Bank Code",
		"casteGroup":          "Caste Group",
	},
	Hindi: {
		// navigation
		"dashboard":         "डैशबोर्ड",
		"dataManagement":    "डेटा प्रबंधन",
		"awwAwhData":        "आंगनवाड़ी कार्यकर्ता और सहायिका डेटा",
		"supportWorkerInfo": "सहायिका की जानकारी",
		"settings":          "सेटिंग्स",
		"navigation":        "नेविगेशन",

		// dashboard
		"totalRecords":     "कुल रिकॉर्ड",
		"awwWorkers":       "आंगनवाड़ी कार्यकर्ता",
		"awhWorkers":       "आंगनवाड़ी सहायिका",
		"supportWorkers":   "सहायिका",
		"recentActivity":   "हाल की गतिविधि",
		"totalStudents":    "कुल छात्र",
		"totalSchools":     "कुल विद्यालय",
		"totalBlocks":      "कुल ब्लॉक",
		"totalClusters":    "कुल संकुल",
		"totalTeachers":    "कुल शिक्षक",
		"neverReuploaded":  "कभी पुनः अपलोड नहीं",
		"pendingReupload":  "पुनः अपलोड लंबित",
		"reuploadDue":      "पुनः अपलोड देय",
		"assignedTeachers": "सौंपे गए शिक्षक",
		"assignedStudents": "सौंपे गए छात्र",
		"assignedSchools":  "सौंपे गए विद्यालय",

		// settings
		"language":       "भाषा",
		"selectLanguage": "भाषा चुनें",
		"english":        "अंग्रेजी",
		"hindi":          "हिंदी",
		"save":           "सेव करें",

		"appTitle": "पाठशाला एडमिन पैनल",

		// records
		"schools":             "विद्यालय",
		"students":            "छात्र",
		"teachers":            "शिक्षक",
		"schoolName":          "विद्यालय का नाम",
		"studentName":         "छात्र का नाम",
		"teacherName":         "शिक्षक का नाम",
		"udiseCode":           "यूडाइस कोड",
		"district":            "जिला",
		"block":               "ब्लॉक",
		"cluster":             "संकुल",
		"class":               "कक्षा",
		"treeName":            "पेड़ का नाम",
		"mobile":              "मोबाइल",
		"username":            "उपयोगकर्ता नाम",
		"studentCount":        "छात्र",
		"verified":            "सत्यापित",
		"notVerified":         "असत्यापित",
		"reuploadCount":       "पुनः अपलोड",
		"lastReuploadDate":    "अंतिम पुनः अपलोड",
		"address":             "पता",
		"grade":               "कक्षा",
		"age":                 "आयु",
		"guardianName":        "अभिभावक का नाम",
		"noRecords":           "कोई रिकॉर्ड नहीं मिला",
		"showingRecords":      "दिखाए जा रहे हैं",
		"of":                  "में से",
		"loginSuccess":        "लॉग इन हो गया",
		"logoutSuccess":       "लॉग आउट हो गया",
		"notLoggedIn":         "लॉग इन नहीं है",
		"verificationSaved":   "सत्यापन अपडेट किया गया",
		"exportSaved":         "निर्यात सहेजा गया",
		"sector":              "सेक्टर",
		"center":              "सेंटर",
		"anganwadiCenterName": "आंगनवाड़ी केंद्र का नाम",
		"dob":                 "जन्म तिथि",
		"contact":             "संपर्क",
		"accountNumber":       "खाता संख्या",
		"bankCode":            "बैंक कोड",
		"casteGroup":          "जाति समूह",
	},
}
