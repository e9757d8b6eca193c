package service_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"arbos/internal/config"
	"arbos/internal/domain"
	"arbos/internal/port"
	"arbos/internal/service"
	"arbos/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "eu-west-2",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 50,
		PresignExpiry: 3600,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// pdfContent returns minimal valid PDF bytes.
func pdfContent() []byte {
	return []byte("%PDF-1.4 test content that is at least a few bytes long for detection purposes")
}

// pngContent returns minimal valid PNG bytes (magic bytes).
func pngContent() []byte {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	return append(header, bytes.Repeat([]byte{0x00}, 100)...)
}

type attachmentTestEnv struct {
	attRepo     *mocks.MockAttachmentRepo
	projectRepo *mocks.MockProjectRepo
	treeRepo    *mocks.MockTreeRepo
	storage     *mocks.MockObjectStorage
	svc         service.AttachmentService
}

func newAttachmentEnv(cfg config.S3Config) *attachmentTestEnv {
	env := &attachmentTestEnv{
		attRepo:     new(mocks.MockAttachmentRepo),
		projectRepo: new(mocks.MockProjectRepo),
		treeRepo:    new(mocks.MockTreeRepo),
		storage:     new(mocks.MockObjectStorage),
	}
	env.svc = service.NewAttachmentService(env.attRepo, env.projectRepo, env.treeRepo, env.storage, &cfg)
	return env
}

func TestAttachmentService_Upload_Success_PDF(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	projectID := uuid.New()

	file, header := createMultipartFile("survey-photos.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)
	env.attRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).Return(nil)
	env.storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://test-bucket.s3.amazonaws.com/test", ETag: "abc"}, nil)
	env.attRepo.On("UpdateStatus", mock.Anything, ownerID, mock.AnythingOfType("uuid.UUID"), domain.AttachmentStatusUploaded).Return(nil)

	result, err := env.svc.Upload(context.Background(), service.AttachmentUploadInput{
		OwnerID:   ownerID,
		ProjectID: projectID,
		File:      file,
		Header:    header,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.AttachmentStatusUploaded, result.Status)
	assert.Equal(t, domain.FileTypePDF, result.FileType)
	assert.Equal(t, "survey-photos.pdf", result.OriginalName)
	assert.Equal(t, "application/pdf", result.ContentType)

	env.attRepo.AssertExpectations(t)
	env.storage.AssertExpectations(t)
}

func TestAttachmentService_Upload_Success_PNG_WithTree(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	projectID := uuid.New()
	treeID := uuid.New()

	file, header := createMultipartFile("crown-damage.png", pngContent(), "image/png")
	defer file.Close()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)
	env.treeRepo.On("GetByID", mock.Anything, ownerID, treeID).
		Return(&domain.Tree{ID: treeID, ProjectID: projectID}, nil)
	env.attRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).Return(nil)
	env.storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://s3/test", ETag: "abc"}, nil)
	env.attRepo.On("UpdateStatus", mock.Anything, ownerID, mock.AnythingOfType("uuid.UUID"), domain.AttachmentStatusUploaded).Return(nil)

	result, err := env.svc.Upload(context.Background(), service.AttachmentUploadInput{
		OwnerID:   ownerID,
		ProjectID: projectID,
		TreeID:    &treeID,
		File:      file,
		Header:    header,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.FileTypePNG, result.FileType)
	assert.Equal(t, &treeID, result.TreeID)
}

func TestAttachmentService_Upload_ProjectNotFound(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	projectID := uuid.New()

	file, header := createMultipartFile("report.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(nil, domain.ErrNotFound)

	result, err := env.svc.Upload(context.Background(), service.AttachmentUploadInput{
		OwnerID:   ownerID,
		ProjectID: projectID,
		File:      file,
		Header:    header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttachmentService_Upload_UnsupportedExtension(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	projectID := uuid.New()

	file, header := createMultipartFile("tree-data.exe", []byte("MZ fake exe content"), "application/octet-stream")
	defer file.Close()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)

	result, err := env.svc.Upload(context.Background(), service.AttachmentUploadInput{
		OwnerID:   ownerID,
		ProjectID: projectID,
		File:      file,
		Header:    header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestAttachmentService_Upload_ContentMismatch(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	projectID := uuid.New()

	// Extension says PDF but the bytes are plain text, so sniffing rejects it.
	file, header := createMultipartFile("disguised.pdf", []byte("just some plain text pretending to be a pdf"), "application/pdf")
	defer file.Close()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)

	result, err := env.svc.Upload(context.Background(), service.AttachmentUploadInput{
		OwnerID:   ownerID,
		ProjectID: projectID,
		File:      file,
		Header:    header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestAttachmentService_Upload_FileTooLarge(t *testing.T) {
	cfg := testS3Config()
	cfg.MaxFileSizeMB = 1
	env := newAttachmentEnv(cfg)
	ownerID := uuid.New()
	projectID := uuid.New()

	file, header := createMultipartFile("huge.pdf", pdfContent(), "application/pdf")
	defer file.Close()
	header.Size = 2 * 1024 * 1024

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)

	result, err := env.svc.Upload(context.Background(), service.AttachmentUploadInput{
		OwnerID:   ownerID,
		ProjectID: projectID,
		File:      file,
		Header:    header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestAttachmentService_Upload_StorageFailure(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	projectID := uuid.New()

	file, header := createMultipartFile("survey.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	env.projectRepo.On("GetByID", mock.Anything, ownerID, projectID).
		Return(&domain.Project{ID: projectID, OwnerID: ownerID}, nil)
	env.attRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).Return(nil)
	env.storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(nil, io.ErrUnexpectedEOF)
	env.attRepo.On("UpdateStatus", mock.Anything, ownerID, mock.AnythingOfType("uuid.UUID"), domain.AttachmentStatusFailed).Return(nil)

	result, err := env.svc.Upload(context.Background(), service.AttachmentUploadInput{
		OwnerID:   ownerID,
		ProjectID: projectID,
		File:      file,
		Header:    header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)

	env.attRepo.AssertExpectations(t)
	env.storage.AssertExpectations(t)
}

func TestAttachmentService_GetDownloadURL(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	attID := uuid.New()

	att := &domain.Attachment{
		ID:       attID,
		OwnerID:  ownerID,
		S3Bucket: "test-bucket",
		S3Key:    "projects/p/attachments/a/file.pdf",
	}

	env.attRepo.On("GetByID", mock.Anything, ownerID, attID).Return(att, nil)
	env.storage.On("GetPresignedURL", mock.Anything, "test-bucket", att.S3Key, int64(3600)).
		Return("https://signed.example.com/file.pdf", nil)

	url, err := env.svc.GetDownloadURL(context.Background(), ownerID, attID)

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/file.pdf", url)
}

func TestAttachmentService_Delete_RemovesObjectAndRow(t *testing.T) {
	env := newAttachmentEnv(testS3Config())
	ownerID := uuid.New()
	attID := uuid.New()

	att := &domain.Attachment{
		ID:       attID,
		OwnerID:  ownerID,
		S3Bucket: "test-bucket",
		S3Key:    "projects/p/attachments/a/file.png",
	}

	env.attRepo.On("GetByID", mock.Anything, ownerID, attID).Return(att, nil)
	env.storage.On("Delete", mock.Anything, "test-bucket", att.S3Key).Return(nil)
	env.attRepo.On("Delete", mock.Anything, ownerID, attID).Return(nil)

	err := env.svc.Delete(context.Background(), ownerID, attID)

	assert.NoError(t, err)
	env.attRepo.AssertExpectations(t)
	env.storage.AssertExpectations(t)
}
