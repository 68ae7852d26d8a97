// file: internals/stubapi/gorm_store.go
package stubapi

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DocumentModel is one JSONB document of a collection.
type DocumentModel struct {
	ID         uint           `gorm:"primaryKey"`
	Collection string         `gorm:"size:160;not null;uniqueIndex:idx_stub_documents_collection_key"`
	Key        int            `gorm:"not null;uniqueIndex:idx_stub_documents_collection_key"`
	Body       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DocumentModel) TableName() string { return "stub_documents" }

// GormStore persists documents in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&DocumentModel{}, &UserModel{})
}

func decodeRow(m DocumentModel) (Doc, error) {
	var d Doc
	if err := sonic.Unmarshal(m.Body, &d); err != nil {
		return nil, err
	}
	d["id"] = m.Key
	return d, nil
}

func encodeDoc(d Doc) (datatypes.JSON, error) {
	b, err := sonic.Marshal(d)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func (s *GormStore) List(ctx context.Context, collection string) ([]Doc, error) {
	var rows []DocumentModel
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("key ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Doc, 0, len(rows))
	for _, r := range rows {
		d, err := decodeRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *GormStore) find(tx *gorm.DB, collection string, id int) (DocumentModel, error) {
	var m DocumentModel
	err := tx.Where("collection = ? AND key = ?", collection, id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, ErrNotFound
	}
	return m, err
}

func (s *GormStore) Get(ctx context.Context, collection string, id int) (Doc, error) {
	m, err := s.find(s.db.WithContext(ctx), collection, id)
	if err != nil {
		return nil, err
	}
	return decodeRow(m)
}

func (s *GormStore) Create(ctx context.Context, collection string, doc Doc) (Doc, error) {
	var out Doc
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the unique (collection, key) index rejects a concurrent duplicate
		var next int
		if err := tx.Model(&DocumentModel{}).
			Select("COALESCE(MAX(key), 0) + 1").
			Where("collection = ?", collection).
			Scan(&next).Error; err != nil {
			return err
		}
		d := merge(doc, Doc{"id": next})
		body, err := encodeDoc(d)
		if err != nil {
			return err
		}
		if err := tx.Create(&DocumentModel{Collection: collection, Key: next, Body: body}).Error; err != nil {
			return err
		}
		out, err = clone(d)
		return err
	})
	return out, err
}

func (s *GormStore) Update(ctx context.Context, collection string, id int, doc Doc, partial bool) (Doc, error) {
	var out Doc
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.find(tx, collection, id)
		if err != nil {
			return err
		}
		cur := Doc{}
		if partial {
			if cur, err = decodeRow(m); err != nil {
				return err
			}
		}
		d := merge(merge(cur, doc), Doc{"id": id})
		if m.Body, err = encodeDoc(d); err != nil {
			return err
		}
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		out, err = clone(d)
		return err
	})
	return out, err
}

func (s *GormStore) Delete(ctx context.Context, collection string, id int) error {
	res := s.db.WithContext(ctx).
		Where("collection = ? AND key = ?", collection, id).
		Delete(&DocumentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ReplaceAll(ctx context.Context, collection string, docs []Doc) ([]Doc, error) {
	out := make([]Doc, 0, len(docs))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).Delete(&DocumentModel{}).Error; err != nil {
			return err
		}
		rows := make([]DocumentModel, 0, len(docs))
		for i, doc := range docs {
			d := merge(doc, Doc{"id": i + 1})
			body, err := encodeDoc(d)
			if err != nil {
				return err
			}
			rows = append(rows, DocumentModel{Collection: collection, Key: i + 1, Body: body})
			cp, err := clone(d)
			if err != nil {
				return err
			}
			out = append(out, cp)
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
