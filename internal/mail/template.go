package mail

import "fmt"

// Template wraps a message body in the branded TrooPay layout used by
// every outbound notification.
func Template(title, recipient, body string) string {
	return fmt.Sprintf(`
  <div style="font-family: Arial, Helvetica, sans-serif; max-width: 600px; margin: 0 auto;">
    <div style="background: #5B3CC4; padding: 16px; text-align: center;">
      <h1 style="color: #fff; margin: 0;">TrooPay</h1>
    </div>
    <div style="padding: 24px;">
      <h2>%s</h2>
      <p>Hello, %s.</p>
      %s
    </div>
    <div style="background: #f4f4f4; padding: 12px; text-align: center; font-size: 12px; color: #888;">
      <p>TrooPay - share expenses without the headache.</p>
    </div>
  </div>
  `, title, recipient, body)
}
