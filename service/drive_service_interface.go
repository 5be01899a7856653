package service

// DriveServiceInterface defines the contract for Google Drive archive operations
type DriveServiceInterface interface {
	UploadReport(folderID, filename string, content []byte) (string, error)
}
