package backendsvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/session"
	"github.com/pathshala/admin/core/student"
	"github.com/pathshala/admin/storage/kv/inmem"
	"github.com/pathshala/admin/tests"
)

func setup(t *testing.T) (*Client, *testutil.FakeBackend) {
	t.Helper()
	fb := testutil.NewFakeBackend()
	t.Cleanup(fb.Close)
	return NewClient(fb.URL+"/", &testutil.Logger{}), fb
}

func newManager() *session.Manager {
	validate, translator := core.NewValidator()
	return session.NewManager(inmemkv.Open(), &testutil.Logger{}, validate, translator)
}

func assertError(t *testing.T, err error, kind Kind, status int, msg string) {
	t.Helper()
	e, ok := AsError(err)
	if !assert.True(t, ok, "err = %v", err) {
		return
	}
	assert.Equal(t, kind, e.Kind, "kind")
	assert.Equal(t, status, e.Status, "status")
	if msg != "" {
		assert.Equal(t, msg, e.Message)
		assert.Equal(t, msg, Message(err))
	}
}

func TestClient_Login(t *testing.T) {
	client, fb := setup(t)

	tests := []struct {
		name       string
		creds      session.Credentials
		noToken    bool
		failure    testutil.Failure
		wantRole   session.Role
		wantKind   Kind
		wantStatus int
		wantMsg    string
		wantPath   string
		wantField  string
	}{
		{
			name:      "admin by udise code",
			creds:     session.Credentials{Role: session.RoleAdmin, Identifier: "22010100101", Password: testutil.SchoolPassword},
			wantRole:  session.RoleAdmin,
			wantPath:  "/login",
			wantField: "udise_code",
		},
		{
			name:      "supervisor by username",
			creds:     session.Credentials{Role: session.RoleSupervisor, Identifier: testutil.SupervisorUser, Password: testutil.SupervisorPasswd},
			wantRole:  session.RoleSupervisor,
			wantPath:  "/login_supervisor",
			wantField: "username",
		},
		{
			name:      "placeholder token",
			creds:     session.Credentials{Role: session.RoleSupervisor, Identifier: testutil.SupervisorUser, Password: testutil.SupervisorPasswd},
			noToken:   true,
			wantRole:  session.RoleSupervisor,
			wantPath:  "/login_supervisor",
			wantField: "username",
		},
		{
			name:       "wrong password",
			creds:      session.Credentials{Role: session.RoleAdmin, Identifier: "22010100101", Password: "nope"},
			wantKind:   KindHTTP,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid username or password",
			wantPath:   "/login",
		},
		{
			name:       "envelope status false",
			creds:      session.Credentials{Role: session.RoleAdmin, Identifier: "22010100101", Password: testutil.SchoolPassword},
			failure:    testutil.FailEnvelope,
			wantKind:   KindEnvelope,
			wantStatus: http.StatusBadRequest,
			wantMsg:    testutil.FailureMessage,
			wantPath:   "/login",
		},
		{
			name:       "missing status",
			creds:      session.Credentials{Role: session.RoleAdmin, Identifier: "22010100101", Password: testutil.SchoolPassword},
			failure:    testutil.FailMissingStatus,
			wantKind:   KindEnvelope,
			wantStatus: http.StatusBadRequest,
			wantPath:   "/login",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb.IssueTokens(!tt.noToken)
			fb.Fail(tt.wantPath, tt.failure)
			defer fb.Fail(tt.wantPath, testutil.FailNone)

			mgr := newManager()
			_ = mgr.Init(context.Background())
			before := len(fb.Requests())

			res, err := mgr.Authenticate(context.Background(), client, tt.creds)

			reqs := fb.Requests()[before:]
			if assert.Len(t, reqs, 1) {
				assert.Equal(t, tt.wantPath, reqs[0].Path)
				assert.NotEmpty(t, reqs[0].RequestID)
				if tt.wantField != "" {
					assert.Equal(t, tt.creds.Identifier, reqs[0].Body[tt.wantField])
					assert.Equal(t, string(tt.creds.Role), reqs[0].Body["role"])
				}
			}

			if tt.wantRole == "" {
				assertError(t, err, tt.wantKind, tt.wantStatus, tt.wantMsg)
				assert.False(t, mgr.IsAuthenticated())
				return
			}

			if !assert.NoError(t, err) {
				return
			}
			assert.True(t, mgr.IsAuthenticated())
			assert.Equal(t, tt.wantRole, mgr.Current().Role)
			assert.Equal(t, res.Token, mgr.Current().Token)
			if tt.noToken {
				assert.Equal(t, "dummy-jwt-token-for-"+string(tt.wantRole), res.Token)
			} else {
				claims, err := testutil.ParseToken(res.Token)
				assert.NoError(t, err)
				assert.Equal(t, string(tt.wantRole), claims["role"])
			}
		})
	}
}

func TestClient_Login_undecodableToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Login successful","token":12345}`))
	}))
	t.Cleanup(srv.Close)

	logger := &testutil.Logger{}
	client := NewClient(srv.URL, logger)
	creds := session.Credentials{Role: session.RoleSupervisor, Identifier: "sup", Password: "pwd"}

	res, err := client.Login(context.Background(), creds)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, PlaceholderToken(session.RoleSupervisor), res.Token)
	assert.Equal(t, session.RoleSupervisor, res.Role)
	assert.Contains(t, logger.Levels(), "debug")
}

func TestClient_Login_localValidation(t *testing.T) {
	client, fb := setup(t)
	_, err := client.Login(context.Background(), session.Credentials{Role: "teacher", Identifier: "x", Password: "y"})
	assertError(t, err, KindValidation, 0, "")
	_, err = client.Login(context.Background(), session.Credentials{Role: session.RoleAdmin, Identifier: " ", Password: "y"})
	assertError(t, err, KindValidation, 0, "")
	assert.Empty(t, fb.Requests())
}

func TestClient_AdminLogin(t *testing.T) {
	client, fb := setup(t)
	ctx := context.Background()

	res, err := client.AdminLogin(ctx, AdminLoginRequest{AdminID: testutil.AdminID, Password: testutil.AdminPassword})
	assert.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, res.Role)
	assert.Equal(t, PlaceholderToken(session.RoleAdmin), res.Token)

	_, err = client.AdminLogin(ctx, AdminLoginRequest{AdminID: testutil.AdminID, Password: "bad"})
	assertError(t, err, KindHTTP, http.StatusUnauthorized, "Invalid admin ID or password")

	fb.Fail("/admin_login", testutil.FailEnvelope)
	_, err = client.AdminLogin(ctx, AdminLoginRequest{AdminID: testutil.AdminID, Password: testutil.AdminPassword})
	assertError(t, err, KindEnvelope, http.StatusUnauthorized, testutil.FailureMessage)

	fb.Fail("/admin_login", testutil.FailMissingData)
	_, err = client.AdminLogin(ctx, AdminLoginRequest{AdminID: testutil.AdminID, Password: testutil.AdminPassword})
	assertError(t, err, KindEnvelope, http.StatusUnauthorized, msgMissingData)

	_, err = client.AdminLogin(ctx, AdminLoginRequest{AdminID: "  ", Password: "x"})
	assertError(t, err, KindValidation, 0, "")
}

func TestClient_lists(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	schools, err := client.Schools(ctx)
	assert.NoError(t, err)
	if assert.Len(t, schools, 3) {
		assert.Equal(t, 3, schools[2].Sno.Int())
		assert.Equal(t, "Selud", schools[2].ClusterName)
	}

	students, err := client.Students(ctx)
	assert.NoError(t, err)
	if assert.Len(t, students, 3) {
		assert.Equal(t, 2, students[1].ReuploadCount.Int())
		assert.True(t, students[1].IsVerified())
	}

	teachers, err := client.Teachers(ctx)
	assert.NoError(t, err)
	if assert.Len(t, teachers, 2) {
		assert.Equal(t, 2, teachers[0].StudentCount.Int())
		assert.Equal(t, 0, teachers[1].StudentCount.Int())
		assert.Equal(t, "", teachers[1].EmployeeID)
	}
}

func TestClient_lists_failures(t *testing.T) {
	tests := []struct {
		name       string
		failure    testutil.Failure
		wantKind   Kind
		wantStatus int
		wantMsg    string
	}{
		{name: "envelope false", failure: testutil.FailEnvelope, wantKind: KindEnvelope, wantStatus: 400, wantMsg: testutil.FailureMessage},
		{name: "http error with message", failure: testutil.FailHTTP, wantKind: KindHTTP, wantStatus: 500, wantMsg: testutil.FailureMessage},
		{name: "http error without json", failure: testutil.FailHTTPPlain, wantKind: KindHTTP, wantStatus: 502, wantMsg: "HTTP error! Status: 502"},
		{name: "malformed body", failure: testutil.FailMalformed, wantKind: KindEnvelope, wantStatus: 400, wantMsg: msgInvalidBody},
		{name: "missing status", failure: testutil.FailMissingStatus, wantKind: KindEnvelope, wantStatus: 400, wantMsg: msgRequestFailed},
		{name: "missing data", failure: testutil.FailMissingData, wantKind: KindEnvelope, wantStatus: 400, wantMsg: msgMissingData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, fb := setup(t)
			fb.Fail("/fetch_school", tt.failure)
			schools, err := client.Schools(context.Background())
			assert.Nil(t, schools)
			assertError(t, err, tt.wantKind, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestClient_networkError(t *testing.T) {
	fb := testutil.NewFakeBackend()
	client := NewClient(fb.URL, &testutil.Logger{})
	fb.Close()

	_, err := client.Teachers(context.Background())
	assertError(t, err, KindNetwork, 0, "Network error. Please check your connection and try again.")
}

func TestClient_StudentsByUdise(t *testing.T) {
	client, fb := setup(t)
	ctx := context.Background()

	students, err := client.StudentsByUdise(ctx, " 22010100101 ")
	assert.NoError(t, err)
	assert.Len(t, students, 2)

	students, err = client.StudentsByUdise(ctx, "00000000000")
	assert.NoError(t, err)
	assert.NotNil(t, students)
	assert.Len(t, students, 0)

	before := len(fb.Requests())
	_, err = client.StudentsByUdise(ctx, "   ")
	assertError(t, err, KindValidation, 0, "Please enter a valid UDISE code")
	assert.Len(t, fb.Requests(), before)
}

func TestClient_TeacherDashboard(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	td, err := client.TeacherDashboard(ctx, "22010100101")
	assert.NoError(t, err)
	assert.Equal(t, 2, td.Count.Int())
	assert.Equal(t, "Govt Primary School Gobra", td.SchoolName)

	td, err = client.TeacherDashboard(ctx, "999")
	assert.NoError(t, err)
	assert.Equal(t, 0, td.Count.Int())
	assert.Equal(t, "", td.SchoolName)
}

func TestClient_DashboardStats(t *testing.T) {
	client, fb := setup(t)
	ctx := context.Background()

	stats, err := client.DashboardStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStudents.Int())
	assert.Equal(t, 3, stats.TotalSchools.Int())
	assert.Equal(t, 2, stats.TotalBlocks.Int())
	assert.Equal(t, 3, stats.TotalClusters.Int())
	assert.Equal(t, 2, stats.TotalTeachers.Int())

	for _, failure := range []testutil.Failure{testutil.FailEnvelope, testutil.FailHTTP, testutil.FailMalformed} {
		fb.Fail("/web_dashboard", failure)
		stats, err = client.DashboardStats(ctx)
		assertError(t, err, kindOf(t, err), 500, "Failed to fetch dashboard statistics")
		assert.Zero(t, stats)
	}

	fb.Close()
	stats, err = client.DashboardStats(ctx)
	assertError(t, err, KindNetwork, 500, "Failed to fetch dashboard statistics")
	assert.Zero(t, stats)
}

// kindOf returns the kind of err, failing the test if err is not an *Error.
func kindOf(t *testing.T, err error) Kind {
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("not a gateway error: %v", err)
	}
	return e.Kind
}

func TestClient_ReuploadStats(t *testing.T) {
	client, fb := setup(t)
	ctx := context.Background()

	stats, err := client.ReuploadStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.NeverReuploaded.Int())
	assert.Equal(t, 3, stats.PendingReupload.Int())
	assert.Equal(t, 1, stats.ReuploadDue.Int())

	fb.Fail("/reupload_stats", testutil.FailEnvelope)
	stats, err = client.ReuploadStats(ctx)
	assertError(t, err, KindEnvelope, 500, "Failed to fetch reupload statistics")
	assert.Zero(t, stats)
}

func TestClient_UpdateStudentVerification(t *testing.T) {
	client, fb := setup(t)
	ctx := context.Background()

	students, _ := client.Students(ctx)

	// record without employee id: matched on name and udise code
	target := students[1]
	newState := student.ToggleVerified(target.Verified)
	err := client.UpdateStudentVerification(ctx, NewVerificationUpdate(target, newState))
	assert.NoError(t, err)
	local := student.ApplyVerification(students, target, newState)

	remote, _ := client.Students(ctx)
	assert.Equal(t, remote, local)
	assert.Equal(t, student.Unverified, remote[1].Verified)

	// and back
	err = client.UpdateStudentVerification(ctx, NewVerificationUpdate(local[1], student.ToggleVerified(local[1].Verified)))
	assert.NoError(t, err)
	remote, _ = client.Students(ctx)
	assert.Equal(t, students, remote)

	err = client.UpdateStudentVerification(ctx, VerificationUpdate{EmployeeID: "E404", Verified: "true"})
	assertError(t, err, KindHTTP, http.StatusNotFound, "No student found with the provided information.")

	before := len(fb.Requests())
	err = client.UpdateStudentVerification(ctx, VerificationUpdate{Name: "Aarav Sahu", Verified: "true"})
	assertError(t, err, KindValidation, 0, "")
	err = client.UpdateStudentVerification(ctx, VerificationUpdate{EmployeeID: "E1", Verified: "yes"})
	assertError(t, err, KindValidation, 0, "")
	assert.Len(t, fb.Requests(), before)
}

func TestClient_supervisor(t *testing.T) {
	client, fb := setup(t)
	ctx := context.Background()

	stats, err := client.SupervisorDashboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.AssignedTeachers.Int())
	assert.Equal(t, 3, stats.AssignedStudents.Int())
	assert.Equal(t, 2, stats.AssignedSchools.Int())
	assert.Equal(t, 7, stats.TotalRecords())

	schools, err := client.SupervisorSchools(ctx)
	assert.NoError(t, err)
	assert.Len(t, schools, 2)

	students, err := client.SupervisorStudents(ctx)
	assert.NoError(t, err)
	if assert.Len(t, students, 3) {
		assert.Equal(t, 11, students[1].Age.Int())
	}

	teachers, err := client.SupervisorTeachers(ctx)
	assert.NoError(t, err)
	assert.Len(t, teachers, 2)

	fb.Fail("/supervisor/schools", testutil.FailEnvelope)
	_, err = client.SupervisorSchools(ctx)
	assertError(t, err, KindEnvelope, 400, testutil.FailureMessage)
}
