package usecase

import (
	"fmt"
	"strings"
)

// templates maps template keys to message bodies. Placeholders use
// {{name}} syntax and are filled from the request's data map.
var templates = map[string]string{
	"delivery_assigned":  "You have been assigned order {{order_id}}. Head to the restaurant for pickup.",
	"delivery_picked_up": "Order {{order_id}} picked up. Safe travels to the customer.",
	"delivery_completed": "Order {{order_id}} delivered. Thanks for completing this delivery!",
	"driver_on_shift":    "You are now on shift and visible to dispatch.",
	"driver_off_shift":   "You are now off shift. No new deliveries will be assigned.",
}

// renderTemplate substitutes data values into the template for key.
// Unknown keys are an error; placeholders without a matching data entry
// are left in place so the gap is visible downstream.
func renderTemplate(key string, data map[string]string) (string, error) {
	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("unknown notification template %q", key)
	}

	message := tmpl
	for name, value := range data {
		message = strings.ReplaceAll(message, "{{"+name+"}}", value)
	}
	return message, nil
}
