package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// UploadReport uploads a finished workbook into the archive folder and returns
// the Drive file ID. Re-running the same week replaces the earlier upload
// instead of piling up copies.
func (ds *DriveService) UploadReport(folderID, filename string, content []byte) (string, error) {
	query := fmt.Sprintf("'%s' in parents and name='%s' and trashed=false", folderID, filename)

	r, err := ds.client.Files.List().
		Q(query).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to list archive folder: %w", err)
	}

	if len(r.Files) > 0 {
		existing := r.Files[0]
		updated, err := ds.client.Files.Update(existing.Id, &drive.File{}).
			Media(bytes.NewReader(content)).
			Do()
		if err != nil {
			return "", fmt.Errorf("failed to replace archived report: %w", err)
		}
		log.Printf("📤 Replaced archived report %s (file id: %s)", filename, updated.Id)
		return updated.Id, nil
	}

	file := &drive.File{
		Name:     filename,
		MimeType: xlsxMimeType,
		Parents:  []string{folderID},
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(content)).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	log.Printf("📤 Archived report %s (file id: %s)", filename, created.Id)
	return created.Id, nil
}
