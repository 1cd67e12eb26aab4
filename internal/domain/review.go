package domain

import "time"

// Review is a customer testimonial. Rating is out of 5.
type Review struct {
	ID            string
	CustomerName  string
	CustomerImage string
	ProductName   string
	ProductImage  string
	Rating        int
	Message       string
	Date          time.Time
}
