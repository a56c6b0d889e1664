package types

import "time"

// Application statuses. Transitions are performed by the admin tooling, not
// by this service; new submissions always start as pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is one grant submission stored in the applications collection.
// ApplicationID is assigned once at submission time and never changes.
type Application struct {
	ApplicationID string `bson:"applicationId" json:"applicationId"`

	// Personal information
	FirstName   string `bson:"firstName" json:"firstName"`
	LastName    string `bson:"lastName" json:"lastName"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	DateOfBirth string `bson:"dateOfBirth" json:"dateOfBirth"`
	Country     string `bson:"country" json:"country"`
	City        string `bson:"city" json:"city"`

	// Project information
	ProjectTitle       string `bson:"projectTitle" json:"projectTitle"`
	ProjectDescription string `bson:"projectDescription" json:"projectDescription"`
	ProjectField       string `bson:"projectField" json:"projectField"`
	TargetAudience     string `bson:"targetAudience" json:"targetAudience"`

	// Grant details. Amount is kept as the applicant typed it; no arithmetic
	// is ever done on it.
	RequestedAmount string `bson:"requestedAmount" json:"requestedAmount"`
	ProjectDuration string `bson:"projectDuration" json:"projectDuration"`
	FundingUse      string `bson:"fundingUse" json:"fundingUse"`
	ExpectedImpact  string `bson:"expectedImpact" json:"expectedImpact"`

	// Additional information
	PreviousExperience string `bson:"previousExperience" json:"previousExperience"`
	WhyDeserving       string `bson:"whyDeserving" json:"whyDeserving"`

	Status      string    `bson:"status" json:"status"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submittedAt"`
}
