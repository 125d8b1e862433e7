// Package jobs defines the background jobs Voltkart pushes onto the queue.
// Every job type must be registered at boot via Register so workers can
// deserialize it by name.
package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/voltkart/pkg/mail"
	"github.com/shashiranjanraj/voltkart/pkg/queue"
)

// Register makes all job types known to the queue. Called once at boot.
func Register() {
	queue.Register("*jobs.OrderConfirmationJob", func() queue.Job { return &OrderConfirmationJob{} })
	queue.Register("*jobs.LowStockDigestJob", func() queue.Job { return &LowStockDigestJob{} })
}

// OrderConfirmationJob emails the customer after a successful order.
type OrderConfirmationJob struct {
	OrderID      string `json:"order_id"`
	Email        string `json:"email"`
	CustomerName string `json:"customer_name"`
	Total        string `json:"total"`
	Qty          int    `json:"qty"`
}

func (j *OrderConfirmationJob) Handle() error {
	body := fmt.Sprintf(`
		<h2>Thank you for your order, %s!</h2>
		<p>Your order <strong>%s</strong> has been received and is being processed.</p>
		<table>
			<tr><td>Items</td><td>%d</td></tr>
			<tr><td>Total</td><td>&#8377;%s</td></tr>
		</table>
		<p>We will email you again when it ships.</p>`,
		j.CustomerName, j.OrderID, j.Qty, j.Total)

	return mail.To(j.Email).
		Subject(fmt.Sprintf("Voltkart order %s confirmed", j.OrderID)).
		Body(body).
		Send()
}
