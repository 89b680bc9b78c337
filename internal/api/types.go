package api

// Task statuses as the server speaks them. The status cycle has exactly two
// states.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task is a task as returned by the server. The server owns ordering; the
// client never re-sorts.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// TaskPatch is a partial update for a task. Nil fields are left untouched.
type TaskPatch struct {
	Title  *string `json:"title,omitempty"`
	Status *string `json:"status,omitempty"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SignupResponse is the body of a successful signup. Token may be empty,
// which means the account was created but the user must log in explicitly.
type SignupResponse struct {
	Token string `json:"token"`
}

// AttendanceUser identifies who marked attendance.
type AttendanceUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AttendanceRecord is one row of the admin roster.
type AttendanceRecord struct {
	User AttendanceUser `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTaskRequest struct {
	Title string `json:"title"`
}

type messageResponse struct {
	Message string `json:"message"`
}
