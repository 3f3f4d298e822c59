package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const MaxUploadSize = 50 << 20

var allowedMedia = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "webp": {}, "heic": {}, "mp4": {}, "mov": {},
}

type MediaService interface {
	Upload(ctx context.Context, userID, fileName string, file []byte) (*models.MediaAsset, error)
	List(ctx context.Context, userID string) ([]*models.MediaAsset, error)
	Delete(ctx context.Context, userID, assetID string) error
}

type mediaService struct {
	ma      repository.MediaAssetRepository
	storage ObjectStorage
	now     func() time.Time
}

func NewMediaService(ma repository.MediaAssetRepository, storage ObjectStorage) MediaService {
	return &mediaService{
		ma:      ma,
		storage: storage,
		now:     time.Now,
	}
}

// Upload sniffs the content type, stores the file under a random key and
// records the asset. The returned FileURL is what posts and avatars point to.
func (s *mediaService) Upload(ctx context.Context, userID, fileName string, file []byte) (*models.MediaAsset, error) {
	if len(file) == 0 {
		return nil, logErr(invalid("The file is empty."))
	}
	if len(file) > MaxUploadSize {
		return nil, logErr(invalid("The file is too large."))
	}

	kind, err := filetype.Match(file)
	if err != nil || kind == types.Unknown {
		return nil, logErr(invalid("Unsupported file type."))
	}
	if _, ok := allowedMedia[kind.Extension]; !ok {
		return nil, logErr(invalid(fmt.Sprintf("File type %s is not allowed.", kind.Extension)))
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	key := fmt.Sprintf("%s.%s", id, kind.Extension)
	if err := s.storage.Put(ctx, key, file, kind.MIME.Value); err != nil {
		return nil, fmt.Errorf("uploading media: %w", err)
	}

	if fileName == "" {
		fileName = key
	}
	asset := &models.MediaAsset{
		ID:        id,
		UserID:    userID,
		FileName:  fileName,
		FileType:  kind.MIME.Value,
		FileSize:  int64(len(file)),
		FileURL:   s.storage.PublicURL(key),
		CreatedAt: s.now().UTC(),
	}
	if err := s.ma.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *mediaService) List(ctx context.Context, userID string) ([]*models.MediaAsset, error) {
	return s.ma.ListByUserID(ctx, userID)
}

func (s *mediaService) Delete(ctx context.Context, userID, assetID string) error {
	asset, err := s.ma.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset == nil || asset.UserID != userID {
		return logErr(notFound("media asset"))
	}
	if err := s.ma.Remove(ctx, assetID); err != nil {
		return err
	}

	if err := s.storage.Remove(ctx, path.Base(asset.FileURL)); err != nil {
		slog.Info("removing stored media failed", "asset_id", asset.ID, "error", err)
	}
	return nil
}
