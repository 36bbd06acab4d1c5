package email

// SendWelcomeEmail greets a newly created administrator.
func (c *Client) SendWelcomeEmail(to, username string) error {
	data := map[string]any{
		"Username": username,
		"Email":    to,
	}

	return c.SendEmail(to, "Welcome to EduVerse", TemplateWelcome, data)
}
