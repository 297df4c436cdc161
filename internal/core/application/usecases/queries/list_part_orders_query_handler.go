package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListPartOrdersQueryHandler retrieves pages of part orders in insertion
// order for the orchestrator's polling sync.
type ListPartOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListPartOrdersQueryHandler creates a handler for part-order listing queries.
func NewListPartOrdersQueryHandler(db *gorm.DB) ListPartOrdersQueryHandler {
	return ListPartOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are ordered by id ascending and
// restricted to the id set when one was supplied.
func (h ListPartOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPartOrdersQuery,
) ([]PartOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			maintenance_id,
			purchase_card_num,
			total_amount,
			purchased_on,
			installed_on
		FROM fm_part_orders
	`
	args := make([]any, 0, 3)
	if len(query.IDs()) > 0 {
		sql += ` WHERE id IN ?`
		args = append(args, query.IDs())
	}
	sql += ` ORDER BY id OFFSET ? LIMIT ?`
	args = append(args, query.StartIndex(), query.BatchSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partOrders := make([]PartOrderResponse, 0)
	for rows.Next() {
		var p PartOrderResponse
		if err = rows.Scan(
			&p.ID,
			&p.MaintenanceID,
			&p.PurchaseCardNum,
			&p.TotalAmount,
			&p.PurchasedOn,
			&p.InstalledOn,
		); err != nil {
			return nil, err
		}
		partOrders = append(partOrders, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partOrders, nil
}
