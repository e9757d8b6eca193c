package domain

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleSurveyor UserRole = "surveyor"
)

// ValidUserRoles enumerates the accepted user roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:    true,
	RoleSurveyor: true,
}

// ProjectStatus represents the lifecycle of a survey project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// ValidProjectStatuses enumerates the accepted project statuses.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectStatusActive:    true,
	ProjectStatusOnHold:    true,
	ProjectStatusCompleted: true,
	ProjectStatusArchived:  true,
}

// TaskStatus represents the lifecycle of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// ValidTaskStatuses enumerates the accepted task statuses.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskStatusPending:    true,
	TaskStatusInProgress: true,
	TaskStatusDone:       true,
}

// ReportStatus represents the decompilation lifecycle of a report.
type ReportStatus string

const (
	ReportStatusDraft       ReportStatus = "draft"
	ReportStatusQueued      ReportStatus = "queued"
	ReportStatusDecompiling ReportStatus = "decompiling"
	ReportStatusDecompiled  ReportStatus = "decompiled"
	ReportStatusFailed      ReportStatus = "failed"
)

// AgeClass is the surveyor's age classification of a tree.
type AgeClass string

const (
	AgeClassYoung       AgeClass = "young"
	AgeClassSemiMature  AgeClass = "semi_mature"
	AgeClassEarlyMature AgeClass = "early_mature"
	AgeClassMature      AgeClass = "mature"
	AgeClassOverMature  AgeClass = "over_mature"
	AgeClassVeteran     AgeClass = "veteran"
)

// ValidAgeClasses enumerates the accepted age classifications.
var ValidAgeClasses = map[AgeClass]bool{
	AgeClassYoung:       true,
	AgeClassSemiMature:  true,
	AgeClassEarlyMature: true,
	AgeClassMature:      true,
	AgeClassOverMature:  true,
	AgeClassVeteran:     true,
}

// TreeCondition is the overall physiological condition of a tree.
type TreeCondition string

const (
	ConditionGood TreeCondition = "good"
	ConditionFair TreeCondition = "fair"
	ConditionPoor TreeCondition = "poor"
	ConditionDead TreeCondition = "dead"
)

// ValidTreeConditions enumerates the accepted condition grades.
var ValidTreeConditions = map[TreeCondition]bool{
	ConditionGood: true,
	ConditionFair: true,
	ConditionPoor: true,
	ConditionDead: true,
}

// RetentionCategory is the BS5837 retention category (A/B/C/U).
type RetentionCategory string

const (
	CategoryA RetentionCategory = "A"
	CategoryB RetentionCategory = "B"
	CategoryC RetentionCategory = "C"
	CategoryU RetentionCategory = "U"
)

// ValidRetentionCategories enumerates the accepted BS5837 categories.
var ValidRetentionCategories = map[RetentionCategory]bool{
	CategoryA: true,
	CategoryB: true,
	CategoryC: true,
	CategoryU: true,
}

// FileType represents the allowed attachment file types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to the canonical MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// AttachmentStatus represents the lifecycle of an uploaded attachment.
type AttachmentStatus string

const (
	AttachmentStatusPending  AttachmentStatus = "pending"
	AttachmentStatusUploaded AttachmentStatus = "uploaded"
	AttachmentStatusFailed   AttachmentStatus = "failed"
	AttachmentStatusDeleted  AttachmentStatus = "deleted"
)
