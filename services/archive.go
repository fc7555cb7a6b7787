package services

import (
	"bytes"
	goctx "context"
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"github.com/itsmontel/steppet_api/model"
)

// ArchiveService uploads step records that fall past the retention window
// to object storage before they are pruned from the database.
type ArchiveService struct {
	context.DefaultService

	client     *minio.Client
	bucketName string
	endpoint   string
	accessKey  string
	secretKey  string
	useSSL     bool
}

const ARCHIVE_SVC = "archive_svc"

func (svc ArchiveService) Id() string {
	return ARCHIVE_SVC
}

func (svc *ArchiveService) Configure(ctx *context.Context) error {
	svc.endpoint = os.Getenv("MINIO_ENDPOINT")
	if svc.endpoint == "" {
		svc.endpoint = "localhost:9000"
	}

	svc.accessKey = os.Getenv("MINIO_ACCESS_KEY")
	if svc.accessKey == "" {
		svc.accessKey = "admin"
	}

	svc.secretKey = os.Getenv("MINIO_SECRET_KEY")
	if svc.secretKey == "" {
		svc.secretKey = "password123"
	}

	svc.useSSL = os.Getenv("MINIO_USE_SSL") == "true"

	svc.bucketName = os.Getenv("MINIO_BUCKET_NAME")
	if svc.bucketName == "" {
		svc.bucketName = "steppet-archive"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *ArchiveService) Start() error {
	client, err := minio.New(svc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.accessKey, svc.secretKey, ""),
		Secure: svc.useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}

	svc.client = client

	if err := svc.ensureBucket(); err != nil {
		return fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	log.Printf("Archive service started with endpoint: %s", svc.endpoint)
	return nil
}

func (svc *ArchiveService) ensureBucket() error {
	ctx := goctx.Background()

	exists, err := svc.client.BucketExists(ctx, svc.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = svc.client.MakeBucket(ctx, svc.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created archive bucket: %s", svc.bucketName)
	}

	return nil
}

// ArchiveStepRecords writes one JSON batch per user per prune run, keyed by
// user id and upload timestamp.
func (svc *ArchiveService) ArchiveStepRecords(userID string, records []model.DailyStepRecord) error {
	if len(records) == 0 {
		return nil
	}

	payload, err := sonic.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode step records: %v", err)
	}

	objectName := fmt.Sprintf("steps/%s/%s.json", userID, time.Now().UTC().Format("20060102T150405"))

	ctx := goctx.Background()
	_, err = svc.client.PutObject(ctx, svc.bucketName, objectName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload archive batch: %v", err)
	}

	log.WithFields(log.Fields{"userID": userID, "records": len(records), "object": objectName}).Info("Archived step records")
	return nil
}

// ListArchives returns the archive object names stored for one user.
func (svc *ArchiveService) ListArchives(userID string) ([]string, error) {
	ctx := goctx.Background()

	var names []string
	objectCh := svc.client.ListObjects(ctx, svc.bucketName, minio.ListObjectsOptions{
		Prefix:    fmt.Sprintf("steps/%s/", userID),
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list archives: %v", object.Err)
		}
		names = append(names, object.Key)
	}

	return names, nil
}
