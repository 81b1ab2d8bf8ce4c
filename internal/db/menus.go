package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// StoredMenu is a parsed menu persisted for the passenger's history view.
type StoredMenu struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	ImageURL  string            `json:"imageUrl,omitempty"`
	RawText   string            `json:"rawText,omitempty"`
	Source    string            `json:"source"`
	Items     []models.MenuItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	CreatedAt time.Time         `json:"createdAt"`
}

// SaveMenu inserts a parsed menu. Items are stored as a JSONB document; the
// structured pipeline output is the source of truth, the raw OCR text is kept
// for reprocessing.
func SaveMenu(ctx context.Context, menu *StoredMenu) error {
	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	menu.ItemCount = len(menu.Items)
	menu.CreatedAt = time.Now()

	itemsJSON, err := json.Marshal(menu.Items)
	if err != nil {
		return fmt.Errorf("failed to serialize menu items: %w", err)
	}

	query := `INSERT INTO menus (id, user_id, image_url, raw_text, source, items, item_count, created_at)
	          VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6::jsonb, $7, $8)`

	_, err = Pool.Exec(ctx, query,
		menu.ID,
		menu.UserID,
		menu.ImageURL,
		menu.RawText,
		menu.Source,
		string(itemsJSON),
		menu.ItemCount,
		menu.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	return nil
}

// GetMenus returns the user's parsed menus, newest first.
func GetMenus(ctx context.Context, userID string, limit, offset int) ([]StoredMenu, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT id, user_id, image_url, raw_text, source, items, item_count, created_at
	          FROM menus
	          WHERE user_id = $1::uuid
	          ORDER BY created_at DESC
	          LIMIT $2 OFFSET $3`

	rows, err := Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	var menus []StoredMenu
	for rows.Next() {
		var m StoredMenu
		var itemsJSON []byte
		if err := rows.Scan(&m.ID, &m.UserID, &m.ImageURL, &m.RawText, &m.Source,
			&itemsJSON, &m.ItemCount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &m.Items); err != nil {
			return nil, fmt.Errorf("failed to decode menu items: %w", err)
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

// CountMenus returns the user's total menu count, for pagination.
func CountMenus(ctx context.Context, userID string) (int, error) {
	var count int
	err := Pool.QueryRow(ctx, `SELECT COUNT(*) FROM menus WHERE user_id = $1::uuid`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count menus: %w", err)
	}
	return count, nil
}

// GetMenuByID returns a single menu owned by the user.
func GetMenuByID(ctx context.Context, userID, menuID string) (*StoredMenu, error) {
	query := `SELECT id, user_id, image_url, raw_text, source, items, item_count, created_at
	          FROM menus
	          WHERE id = $1::uuid AND user_id = $2::uuid`

	var m StoredMenu
	var itemsJSON []byte
	err := Pool.QueryRow(ctx, query, menuID, userID).Scan(
		&m.ID, &m.UserID, &m.ImageURL, &m.RawText, &m.Source,
		&itemsJSON, &m.ItemCount, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("menu not found: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &m.Items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return &m, nil
}

// UpdateMenuItems replaces the stored items, used when the passenger toggles
// dish selections.
func UpdateMenuItems(ctx context.Context, userID, menuID string, items []models.MenuItem) error {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize menu items: %w", err)
	}

	tag, err := Pool.Exec(ctx,
		`UPDATE menus SET items = $1::jsonb, item_count = $2 WHERE id = $3::uuid AND user_id = $4::uuid`,
		string(itemsJSON), len(items), menuID, userID)
	if err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu not found")
	}
	return nil
}

// DeleteMenu removes a menu owned by the user.
func DeleteMenu(ctx context.Context, userID, menuID string) error {
	tag, err := Pool.Exec(ctx,
		`DELETE FROM menus WHERE id = $1::uuid AND user_id = $2::uuid`, menuID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu not found")
	}
	return nil
}
