package model

import "time"

const (
	CertCapstone = "capstone"
	CertGraduate = "graduate"
)

// Certificate is a record of a completion certificate. Rendering is a
// frontend concern; the backend only issues and lists them.
type Certificate struct {
	BaseModel
	UserID   uint      `gorm:"uniqueIndex:idx_user_cert;not null" json:"userId"`
	CertType string    `gorm:"uniqueIndex:idx_user_cert;size:50;not null" json:"certType"`
	SerialNo string    `gorm:"size:36;unique;not null" json:"serialNo"`
	IssuedAt time.Time `gorm:"not null" json:"issuedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}
