package jobs

import (
	"fmt"
	"strings"

	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/config"
	"github.com/shashiranjanraj/voltkart/pkg/logger"
	"github.com/shashiranjanraj/voltkart/pkg/mail"
)

// DefaultLowStockThreshold flags products that need a restock.
const DefaultLowStockThreshold = 10

// LowStockDigestJob emails the admin a daily list of products running low.
// Scheduled by the server; can also be dispatched manually.
type LowStockDigestJob struct {
	Threshold int `json:"threshold"`
}

func (j *LowStockDigestJob) Handle() error {
	admin := config.AdminEmail()
	if admin == "" {
		logger.Warn("low stock digest: ADMIN_EMAIL not configured, skipping")
		return nil
	}

	threshold := j.Threshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	products, err := repositories.NewProductRepository().LowStock(threshold)
	if err != nil {
		return fmt.Errorf("low stock digest: %w", err)
	}
	if len(products) == 0 {
		logger.Info("low stock digest: nothing to report")
		return nil
	}

	var rows strings.Builder
	for _, p := range products {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%d</td></tr>", p.Name, p.SKU, p.Stock)
	}

	body := fmt.Sprintf(`
		<h2>Low stock report</h2>
		<p>%d product(s) at or below %d units:</p>
		<table border="1" cellpadding="4">
			<tr><th>Product</th><th>SKU</th><th>Stock</th></tr>
			%s
		</table>`,
		len(products), threshold, rows.String())

	return mail.To(admin).
		Subject("Voltkart low stock digest").
		Body(body).
		Send()
}
