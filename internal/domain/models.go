package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated surveyor or practice admin.
type User struct {
	ID                   uuid.UUID  `db:"id" json:"id"`
	Email                string     `db:"email" json:"email"`
	PasswordHash         string     `db:"password_hash" json:"-"`
	FullName             string     `db:"full_name" json:"full_name"`
	Role                 UserRole   `db:"role" json:"role"`
	IsActive             bool       `db:"is_active" json:"is_active"`
	PasswordResetTokenID *string    `db:"password_reset_token_id" json:"-"`
	LastLoginAt          *time.Time `db:"last_login_at" json:"last_login_at"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updated_at"`
}

// Project represents a site survey engagement for a client.
type Project struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	OwnerID     uuid.UUID     `db:"owner_id" json:"owner_id"`
	Name        string        `db:"name" json:"name"`
	ClientName  string        `db:"client_name" json:"client_name"`
	SiteAddress string        `db:"site_address" json:"site_address"`
	Description string        `db:"description" json:"description"`
	Status      ProjectStatus `db:"status" json:"status"`
	SurveyDate  *time.Time    `db:"survey_date" json:"survey_date"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// Tree represents a single surveyed tree within a project.
type Tree struct {
	ID           uuid.UUID         `db:"id" json:"id"`
	ProjectID    uuid.UUID         `db:"project_id" json:"project_id"`
	OwnerID      uuid.UUID         `db:"owner_id" json:"owner_id"`
	TreeNumber   string            `db:"tree_number" json:"tree_number"`
	Species      string            `db:"species" json:"species"`
	CommonName   string            `db:"common_name" json:"common_name"`
	HeightM      float64           `db:"height_m" json:"height_m"`
	DBHMm        int               `db:"dbh_mm" json:"dbh_mm"`
	CrownSpreadM float64           `db:"crown_spread_m" json:"crown_spread_m"`
	AgeClass     AgeClass          `db:"age_class" json:"age_class"`
	Condition    TreeCondition     `db:"condition" json:"condition"`
	Category     RetentionCategory `db:"category" json:"category"`
	RPARadiusM   float64           `db:"rpa_radius_m" json:"rpa_radius_m"`
	Observations string            `db:"observations" json:"observations"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}

// Note represents a free-text observation attached to a project and
// optionally to a specific tree.
type Note struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	ProjectID uuid.UUID  `db:"project_id" json:"project_id"`
	TreeID    *uuid.UUID `db:"tree_id" json:"tree_id"`
	OwnerID   uuid.UUID  `db:"owner_id" json:"owner_id"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Task represents an actionable item within a project.
type Task struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ProjectID   uuid.UUID  `db:"project_id" json:"project_id"`
	OwnerID     uuid.UUID  `db:"owner_id" json:"owner_id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Status      TaskStatus `db:"status" json:"status"`
	DueDate     *time.Time `db:"due_date" json:"due_date"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Report represents a survey report document. RawText holds the source text;
// Breakdown holds the structured decompilation result once available.
type Report struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	ProjectID      uuid.UUID       `db:"project_id" json:"project_id"`
	OwnerID        uuid.UUID       `db:"owner_id" json:"owner_id"`
	Title          string          `db:"title" json:"title"`
	ReportType     string          `db:"report_type" json:"report_type"`
	RawText        string          `db:"raw_text" json:"raw_text"`
	Status         ReportStatus    `db:"status" json:"status"`
	Breakdown      json.RawMessage `db:"breakdown" json:"breakdown"`
	DecompileError string          `db:"decompile_error" json:"decompile_error"`
	DecompiledAt   *time.Time      `db:"decompiled_at" json:"decompiled_at"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// Attachment stores metadata about an uploaded file (tree photos, site
// plans, exported documents).
type Attachment struct {
	ID           uuid.UUID        `db:"id" json:"id"`
	ProjectID    uuid.UUID        `db:"project_id" json:"project_id"`
	TreeID       *uuid.UUID       `db:"tree_id" json:"tree_id"`
	OwnerID      uuid.UUID        `db:"owner_id" json:"owner_id"`
	FileName     string           `db:"file_name" json:"file_name"`
	OriginalName string           `db:"original_name" json:"original_name"`
	FileType     FileType         `db:"file_type" json:"file_type"`
	FileSize     int64            `db:"file_size" json:"file_size"`
	S3Bucket     string           `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string           `db:"s3_key" json:"s3_key"`
	ContentType  string           `db:"content_type" json:"content_type"`
	Status       AttachmentStatus `db:"status" json:"status"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
}

// Setting is a key/value entry in the integration settings store.
// Settings are world-readable; writes require authentication.
type Setting struct {
	Key       string     `db:"key" json:"key"`
	Value     string     `db:"value" json:"value"`
	UpdatedBy *uuid.UUID `db:"updated_by" json:"updated_by"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
