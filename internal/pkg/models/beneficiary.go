package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Pincode string `bson:"pincode" json:"pincode"`
}

type DemographicInfo struct {
	Age        int    `bson:"age" json:"age"`
	Gender     string `bson:"gender" json:"gender"`
	Category   string `bson:"category" json:"category"`
	FamilySize int    `bson:"familySize" json:"familySize"`
	Occupation string `bson:"occupation" json:"occupation"`
}

type KYCDocuments struct {
	Aadhaar     string `bson:"aadhaar,omitempty" json:"aadhaar,omitempty"`
	PAN         string `bson:"pan,omitempty" json:"pan,omitempty"`
	BankAccount string `bson:"bankAccount,omitempty" json:"bankAccount,omitempty"`
}

type Beneficiary struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BeneficiaryID    string             `bson:"beneficiaryId" json:"beneficiaryId"`
	Name             string             `bson:"name" json:"name"`
	PhoneNumber      string             `bson:"phoneNumber" json:"phoneNumber"`
	Address          Address            `bson:"address" json:"address"`
	DemographicInfo  DemographicInfo    `bson:"demographicInfo" json:"demographicInfo"`
	KYCDocuments     KYCDocuments       `bson:"kycDocuments" json:"kycDocuments"`
	RegistrationDate time.Time          `bson:"registrationDate" json:"registrationDate"`
	Status           string             `bson:"status" json:"status"`
	ChannelPartner   string             `bson:"channelPartner" json:"channelPartner"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
