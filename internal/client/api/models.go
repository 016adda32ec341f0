package api

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId,omitempty"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Course    string   `json:"course"`
	Type      string   `json:"type"`
	Priority  string   `json:"priority"`
	Deadline  *string  `json:"deadline"`
	Status    string   `json:"status"`
	Completed bool     `json:"completed"`
	Tags      []string `json:"tags"`
}

// NewTask is the create payload; empty optional fields are left to server
// defaults.
type NewTask struct {
	Title    string `json:"title"`
	Course   string `json:"course,omitempty"`
	Priority string `json:"priority,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
}

type Stats struct {
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
	CompletionRate int `json:"completionRate"`
}

type Health struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
}

// AvatarUpload is a presigned PUT target and the URL the image will have.
type AvatarUpload struct {
	UploadURL string `json:"uploadUrl"`
	AvatarURL string `json:"avatarUrl"`
}
