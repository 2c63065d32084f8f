package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

// Failure makes a FakeBackend route misbehave.
type Failure int

const (
	FailNone          Failure = iota
	FailEnvelope              // 200 with "status": false
	FailHTTP                  // 500 with a JSON message
	FailHTTPPlain             // 502 with a non-JSON body
	FailMalformed             // 200 with a non-JSON body
	FailMissingStatus         // 200 without "status"
	FailMissingData           // 200 with "status": true but no data
)

// Fixture credentials.
const (
	AdminID          = "1"
	AdminPassword    = "admin123"
	SchoolPassword   = "school123"
	SupervisorUser   = "sup.raipur"
	SupervisorPasswd = "super123"

	FailureMessage = "Something went wrong on the server"
)

var jwtSecret = []byte("test-secret")

// Request is a call received by a FakeBackend.
type Request struct {
	Method    string
	Path      string
	Body      echo.Map
	RequestID string
}

// FakeBackend is an in-process stand-in for the Pathshala backend, serving JSON fixtures.
type FakeBackend struct {
	*httptest.Server

	mu          sync.Mutex
	schools     []echo.Map
	students    []echo.Map
	teachers    []echo.Map
	hashes      map[string][]byte // udise code | supervisor username -> bcrypt hash
	failures    map[string]Failure
	issueTokens bool
	requests    []Request
	files       map[string][]byte
}

// NewFakeBackend starts a fake backend. Close it when done.
func NewFakeBackend() *FakeBackend {
	fb := &FakeBackend{
		schools:     Schools(),
		students:    Students(),
		teachers:    Teachers(),
		hashes:      make(map[string][]byte),
		failures:    make(map[string]Failure),
		issueTokens: true,
		files: map[string][]byte{
			"tree 1.jpg": []byte("\xff\xd8\xff\xe0fake-jpeg"),
			"cert.pdf":   []byte("%PDF-1.4 fake"),
		},
	}
	for _, s := range fb.schools {
		fb.hashes[s["udise_code"].(string)] = mustHash(SchoolPassword)
	}
	fb.hashes[SupervisorUser] = mustHash(SupervisorPasswd)

	app := echo.New()
	app.HideBanner = true
	app.Logger.SetLevel(log.OFF)
	app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	app.Use(fb.record)

	app.POST("/admin_login", fb.adminLogin)
	app.POST("/login", fb.login)
	app.POST("/login_supervisor", fb.loginSupervisor)
	app.GET("/fetch_school", fb.fetchSchools)
	app.GET("/fetch_student", fb.fetchStudents)
	app.POST("/fetch_student", fb.fetchStudentsByUdise)
	app.GET("/fetch_teacher", fb.fetchTeachers)
	app.POST("/teacher_dashboard", fb.teacherDashboard)
	app.GET("/web_dashboard", fb.webDashboard)
	app.GET("/reupload_stats", fb.reuploadStats)
	app.POST("/update_student_verification", fb.updateVerification)
	app.GET("/supervisor/dashboard", fb.supervisorDashboard)
	app.GET("/supervisor/schools", fb.supervisorList("schools", SupervisorSchools))
	app.GET("/supervisor/students", fb.supervisorList("students", SupervisorStudents))
	app.GET("/supervisor/teachers", fb.supervisorList("teachers", fb.Teachers))
	app.GET("/uploads/:filename", fb.uploadedFile)

	fb.Server = httptest.NewServer(app)
	return fb
}

func mustHash(pwd string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return hash
}

// Fail makes `path` answer with `f` until reset with FailNone.
func (fb *FakeBackend) Fail(path string, f Failure) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures[path] = f
}

// IssueTokens toggles the token field of login responses.
func (fb *FakeBackend) IssueTokens(on bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.issueTokens = on
}

// Requests returns the calls received so far.
func (fb *FakeBackend) Requests() []Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]Request(nil), fb.requests...)
}

// Students returns the current student fixtures, verification updates included.
func (fb *FakeBackend) Students() []echo.Map {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return copyMaps(fb.students)
}

func (fb *FakeBackend) Teachers() []echo.Map {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return copyMaps(fb.teachers)
}

func copyMaps(list []echo.Map) []echo.Map {
	out := make([]echo.Map, 0, len(list))
	for _, m := range list {
		c := make(echo.Map, len(m))
		for k, v := range m {
			c[k] = v
		}
		out = append(out, c)
	}
	return out
}

// ParseToken returns the claims of a token issued by a FakeBackend.
func ParseToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	return claims, err
}

func issueToken(subject, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// record logs the request and short-circuits it when a failure is set for its path.
func (fb *FakeBackend) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()
		body := echo.Map{}
		if req.Method == http.MethodPost {
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil && err != io.EOF {
				return fail(ctx, http.StatusBadRequest, "invalid JSON")
			}
		}
		ctx.Set("body", body)

		fb.mu.Lock()
		fb.requests = append(fb.requests, Request{
			Method:    req.Method,
			Path:      req.URL.Path,
			Body:      body,
			RequestID: req.Header.Get("X-Request-ID"),
		})
		failure := fb.failures[req.URL.Path]
		fb.mu.Unlock()

		switch failure {
		case FailEnvelope:
			return ctx.JSON(http.StatusOK, echo.Map{"status": false, "message": FailureMessage})
		case FailHTTP:
			return ctx.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": FailureMessage})
		case FailHTTPPlain:
			return ctx.String(http.StatusBadGateway, "<html>bad gateway</html>")
		case FailMalformed:
			return ctx.String(http.StatusOK, "<html>not json</html>")
		case FailMissingStatus:
			return ctx.JSON(http.StatusOK, echo.Map{"data": []echo.Map{}})
		case FailMissingData:
			return ctx.JSON(http.StatusOK, echo.Map{"status": true, "message": "ok"})
		}
		return next(ctx)
	}
}

func bodyString(ctx echo.Context, key string) string {
	body, _ := ctx.Get("body").(echo.Map)
	switch v := body[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func fail(ctx echo.Context, code int, msg string) error {
	return ctx.JSON(code, echo.Map{"status": false, "message": msg})
}

func (fb *FakeBackend) checkPassword(key, pwd string) bool {
	fb.mu.Lock()
	hash, ok := fb.hashes[key]
	fb.mu.Unlock()
	return ok && bcrypt.CompareHashAndPassword(hash, []byte(pwd)) == nil
}

func (fb *FakeBackend) adminLogin(ctx echo.Context) error {
	id, pwd := bodyString(ctx, "admin_id"), bodyString(ctx, "password")
	if id == "" || pwd == "" {
		return fail(ctx, http.StatusBadRequest, "Admin ID and password required")
	}
	if id != AdminID || pwd != AdminPassword {
		return fail(ctx, http.StatusUnauthorized, "Invalid admin ID or password")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Admin login successful",
		"data":    echo.Map{"admin_id": 1},
	})
}

func (fb *FakeBackend) loginResponse(ctx echo.Context, subject, role string) error {
	res := echo.Map{"status": true, "message": "Login successful", "role": role}
	fb.mu.Lock()
	issue := fb.issueTokens
	fb.mu.Unlock()
	if issue {
		token, err := issueToken(subject, role)
		if err != nil {
			return err
		}
		res["token"] = token
	}
	return ctx.JSON(http.StatusOK, res)
}

func (fb *FakeBackend) login(ctx echo.Context) error {
	code, pwd := bodyString(ctx, "udise_code"), bodyString(ctx, "password")
	if code == "" || pwd == "" {
		return fail(ctx, http.StatusBadRequest, "UDISE code and password required")
	}
	if !fb.checkPassword(code, pwd) {
		return fail(ctx, http.StatusUnauthorized, "Invalid username or password")
	}
	return fb.loginResponse(ctx, code, "admin")
}

func (fb *FakeBackend) loginSupervisor(ctx echo.Context) error {
	uname, pwd := bodyString(ctx, "username"), bodyString(ctx, "password")
	if uname == "" || pwd == "" {
		return fail(ctx, http.StatusBadRequest, "Username and password required")
	}
	if !fb.checkPassword(uname, pwd) {
		return fail(ctx, http.StatusUnauthorized, "Invalid username or password")
	}
	return fb.loginResponse(ctx, uname, "supervisor")
}

func dataResponse(ctx echo.Context, msg string, data interface{}) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": true, "message": msg, "data": data})
}

func (fb *FakeBackend) fetchSchools(ctx echo.Context) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return dataResponse(ctx, "School data fetched successfully.", fb.schools)
}

func (fb *FakeBackend) fetchStudents(ctx echo.Context) error {
	return dataResponse(ctx, "All student data fetched successfully.", fb.Students())
}

func (fb *FakeBackend) fetchStudentsByUdise(ctx echo.Context) error {
	code := bodyString(ctx, "udise_code")
	matched := make([]echo.Map, 0)
	for _, s := range fb.Students() {
		if s["udise_code"] == code {
			matched = append(matched, s)
		}
	}
	return dataResponse(ctx, "Student data fetched successfully.", matched)
}

func (fb *FakeBackend) fetchTeachers(ctx echo.Context) error {
	return dataResponse(ctx, "Teacher data fetched successfully.", fb.Teachers())
}

func (fb *FakeBackend) teacherDashboard(ctx echo.Context) error {
	code := bodyString(ctx, "udise_code")
	if code == "" {
		return fail(ctx, http.StatusBadRequest, "UDISE code is required.")
	}
	var count int
	for _, s := range fb.Students() {
		if s["udise_code"] == code {
			count++
		}
	}
	var schoolName interface{}
	fb.mu.Lock()
	for _, s := range fb.schools {
		if s["udise_code"] == code {
			schoolName = s["school_name"]
			break
		}
	}
	fb.mu.Unlock()

	return ctx.JSON(http.StatusOK, echo.Map{
		"status":      true,
		"message":     fmt.Sprintf("Total Count of Students of Udise Code %s fetched successfully", code),
		"COUNT":       count,
		"school_name": schoolName,
	})
}

func (fb *FakeBackend) webDashboard(ctx echo.Context) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	blocks := make(map[interface{}]bool)
	clusters := make(map[interface{}]bool)
	for _, s := range fb.schools {
		blocks[s["block_code"]] = true
		clusters[s["cluster_code"]] = true
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":         true,
		"total_students": len(fb.students),
		"total_schools":  len(fb.schools),
		"total_blocks":   len(blocks),
		"total_clusters": len(clusters),
		"total_teachers": strconv.Itoa(len(fb.teachers)), // quoted on purpose
	})
}

func (fb *FakeBackend) reuploadStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":                 true,
		"never_reuploaded_count": 2,
		"pending_reupload_count": 3,
		"reupload_due_count":     1,
	})
}

func (fb *FakeBackend) updateVerification(ctx echo.Context) error {
	verified := bodyString(ctx, "verified")
	if verified != "true" && verified != "false" {
		return fail(ctx, http.StatusBadRequest, "Verification status must be 'true' or 'false'.")
	}
	empID, name, code := bodyString(ctx, "employee_id"), bodyString(ctx, "name"), bodyString(ctx, "udise_code")
	if empID == "" && (name == "" || code == "") {
		return fail(ctx, http.StatusBadRequest, "Either employee_id or both name and udise_code are required.")
	}

	fb.mu.Lock()
	var updated int
	for _, s := range fb.students {
		if (empID != "" && s["employee_id"] == empID) ||
			(empID == "" && s["name"] == name && s["udise_code"] == code) {
			s["verified"] = verified
			updated++
		}
	}
	fb.mu.Unlock()

	if updated == 0 {
		return fail(ctx, http.StatusNotFound, "No student found with the provided information.")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": fmt.Sprintf("Student verification status updated to %s successfully.", verified),
	})
}

func (fb *FakeBackend) supervisorDashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":            true,
		"assigned_teachers": len(fb.Teachers()),
		"assigned_students": len(SupervisorStudents()),
		"assigned_schools":  len(SupervisorSchools()),
	})
}

func (fb *FakeBackend) supervisorList(key string, list func() []echo.Map) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"status": true, key: list()})
	}
}

func (fb *FakeBackend) uploadedFile(ctx echo.Context) error {
	name := ctx.Param("filename")
	fb.mu.Lock()
	content, ok := fb.files[name]
	fb.mu.Unlock()
	if !ok {
		return fail(ctx, http.StatusNotFound, "File not found")
	}
	contentType := "image/jpeg"
	if strings.HasSuffix(name, ".pdf") {
		contentType = "application/pdf"
	}
	return ctx.Blob(http.StatusOK, contentType, content)
}
