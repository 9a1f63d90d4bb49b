package dao

import (
	"context"

	"LearnHub/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// Create 创建笔记
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Create(note).Error
}

// FindByCustomID 按派生键查询笔记列表
func (d *NoteDAO) FindByCustomID(ctx context.Context, customID string) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("custom_id = ?", customID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

// UpdateContent updates the note matching id AND custom_id. A caller
// whose derived key does not match touches zero rows; the dual match is
// the only ownership check in the system.
func (d *NoteDAO) UpdateContent(ctx context.Context, noteID int64, customID string, content string) (int64, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND custom_id = ?", noteID, customID).
		Update("content", content)
	return res.RowsAffected, res.Error
}

// Delete removes the note matching id AND custom_id, same discipline as
// UpdateContent.
func (d *NoteDAO) Delete(ctx context.Context, noteID int64, customID string) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ? AND custom_id = ?", noteID, customID).
		Delete(&models.Note{})
	return res.RowsAffected, res.Error
}
