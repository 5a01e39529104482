package documents

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/pkg/exceptions"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// minioBucketSyncer downloads bucket objects into the local documents folder
// so ingestion only ever reads from disk.
type minioBucketSyncer struct {
	Log         *zap.Logger
	MinioClient *minio.Client
	Bucket      string
	Folder      string
}

func NewMinioBucketSyncer(log *zap.Logger, minioClient *minio.Client, bucket, folder string) contracts.BucketSyncer {
	return &minioBucketSyncer{
		Log:         log,
		MinioClient: minioClient,
		Bucket:      bucket,
		Folder:      folder,
	}
}

func (s *minioBucketSyncer) Sync(ctx context.Context) (int, error) {
	objects := s.MinioClient.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{
		Recursive: true,
	})

	synced := 0
	for object := range objects {
		if object.Err != nil {
			return synced, exceptions.ErrBucketSync(object.Err)
		}
		target := filepath.Join(s.Folder, filepath.FromSlash(object.Key))
		err := s.MinioClient.FGetObject(ctx, s.Bucket, object.Key, target, minio.GetObjectOptions{})
		if err != nil {
			return synced, exceptions.ErrBucketSync(err)
		}
		synced++
		s.Log.Debug("document synced from bucket",
			zap.String("bucket", s.Bucket),
			zap.String("object", object.Key),
		)
	}
	return synced, nil
}
