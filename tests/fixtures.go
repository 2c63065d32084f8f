package testutil

import "github.com/labstack/echo/v4"

// Schools returns the school fixtures, in backend JSON shape.
func Schools() []echo.Map {
	return []echo.Map{
		{
			"sno": 1, "district_code": "2201", "district_name": "Raipur",
			"block_code": "220101", "block_name": "Abhanpur",
			"cluster_code": "22010101", "cluster_name": "Gobra",
			"udise_code": "22010100101", "school_name": "Govt Primary School Gobra", "password": "x",
		},
		{
			"sno": 2, "district_code": "2201", "district_name": "Raipur",
			"block_code": "220101", "block_name": "Abhanpur",
			"cluster_code": "22010102", "cluster_name": "Kendri",
			"udise_code": "22010100202", "school_name": "Govt Middle School Kendri", "password": "x",
		},
		{
			"sno": "3", "district_code": "2202", "district_name": "Durg",
			"block_code": "220203", "block_name": "Patan",
			"cluster_code": "22020301", "cluster_name": "Selud",
			"udise_code": "22020300303", "school_name": "Saraswati Shishu Mandir", "password": "x",
		},
	}
}

// Students returns the student fixtures, in backend JSON shape.
func Students() []echo.Map {
	return []echo.Map{
		{
			"name": "Aarav Sahu", "employee_id": "E1", "school_name": "Govt Primary School Gobra",
			"class": "5", "name_of_tree": "Neem", "plant_image": `uploads\tree 1.jpg`, "certificate": "",
			"date_time": "Mon, 14 Jul 2025 09:00:00 GMT", "udise_code": "22010100101", "verified": "false",
			"reupload_count": 0,
		},
		{
			"name": "Diya Verma", "employee_id": "", "school_name": "Govt Primary School Gobra",
			"class": "4", "name_of_tree": "Peepal", "plant_image": "uploads/peepal.jpg", "certificate": "uploads/cert.pdf",
			"date_time": "Tue, 15 Jul 2025 10:30:00 GMT", "udise_code": "22010100101", "verified": "true",
			"reupload_count": "2", "last_reupload_date": "2025-07-18 09:00:00",
		},
		{
			"name": "Kabir Patel", "employee_id": "E3", "school_name": "Saraswati Shishu Mandir",
			"class": "5", "name_of_tree": "Mango", "plant_image": "mango.jpg", "certificate": "",
			"date_time": "Wed, 16 Jul 2025 11:00:00 GMT", "udise_code": "22020300303", "verified": "false",
			"reupload_count": 1, "last_reupload_date": "2025-07-01",
		},
	}
}

// Teachers returns the teacher fixtures, in backend JSON shape.
func Teachers() []echo.Map {
	return []echo.Map{
		{
			"name": "Sunita Sharma", "mobile": "9876543210", "username": "sunita01", "password": "x",
			"school_name": "Govt Primary School Gobra", "udise_code": "22010100101",
			"date_time": "Mon, 14 Jul 2025 08:00:00 GMT", "student_count": 2, "employee_id": "T1",
		},
		{
			"name": "Rakesh Yadav", "mobile": "9123456780", "username": "rakesh", "password": "x",
			"school_name": "Saraswati Shishu Mandir", "udise_code": "22020300303",
			"date_time": "Mon, 14 Jul 2025 08:10:00 GMT", "student_count": nil,
		},
	}
}

func SupervisorSchools() []echo.Map {
	return []echo.Map{
		{"id": "S1", "schoolName": "Govt Primary School Gobra", "address": "Gobra, Abhanpur", "udise": "22010100101"},
		{"id": "S2", "schoolName": "Saraswati Shishu Mandir", "address": "Selud, Patan", "udise": "22020300303"},
	}
}

func SupervisorStudents() []echo.Map {
	return []echo.Map{
		{"id": "ST1", "name": "Aarav Sahu", "school": "Govt Primary School Gobra", "grade": "5", "age": 10, "guardianName": "Mohan Sahu"},
		{"id": "ST2", "name": "Kabir Patel", "school": "Saraswati Shishu Mandir", "grade": "5", "age": "11", "guardianName": "Suresh Patel"},
		{"id": "ST3", "name": "Meera Nag", "school": "Saraswati Shishu Mandir", "grade": "3", "age": 8, "guardianName": "Lata Nag"},
	}
}
