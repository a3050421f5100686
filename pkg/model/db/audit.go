package db

import "github.com/jinzhu/gorm"

// HubRequestAudit records every configuration request submitted through the
// request form, including the payload that went to the remote service.
type HubRequestAudit struct {
	Model
	SisCourseID   string `gorm:"size:255;not null;index"`
	RequestedBy   string `gorm:"size:255"`
	Status        string `gorm:"size:32;not null"`
	Message       string `gorm:"size:3000"`
	Configuration string `gorm:"type:text"`
}

func (HubRequestAudit) TableName() string {
	return "hubRequestAudit"
}

func (a *HubRequestAudit) NewEntry(DB *gorm.DB) error {

	if err := DB.Create(a).Error; err != nil {
		return err
	}

	return nil
}
