package service

import (
	"encoding/json"
	"fmt"

	"github.com/spacia-app/property-backend/internal/properties/domain"
	"github.com/spacia-app/property-backend/internal/users"
)

// inquiryMessage is the payload the downstream email sender consumes.
type inquiryMessage struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func composeInquiry(owner, inquirer *users.User, listing *domain.Property) ([]byte, error) {
	body := fmt.Sprintf(
		"Dear %s %s,\n\n"+
			"We hope this message finds you well. We are reaching out to inform you that there is a new inquiry for your property listed on Spacia:\n\n"+
			"**Property Name:** %s\n"+
			"**Property Location:** %s\n\n"+
			"Here are the details of the user who has expressed interest in your property:\n"+
			"**Name:** %s %s\n"+
			"**Email:** %s\n\n\n"+
			"You can reach out to the enquirer directly to discuss further details or respond to their inquiry via your Spacia dashboard.\n\n"+
			"If you have any questions or need assistance, please contact our support team at support@spacia.com or call us at +353 899 899 899.\n\n"+
			"Thank you for using Spacia to list your property. We are here to make the process seamless and efficient for you!\n\n"+
			"Best regards,\n"+
			"Team Spacia",
		owner.FirstName, owner.LastName,
		listing.Name, listing.Address,
		inquirer.FirstName, inquirer.LastName, inquirer.Email,
	)

	return json.Marshal(inquiryMessage{
		Recipient: owner.Email,
		Subject:   "New Inquiry for Your Property: " + listing.Name,
		Body:      body,
	})
}
