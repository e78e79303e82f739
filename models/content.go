package models

import "gorm.io/datatypes"

type HomePage struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Title       string         `json:"title"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"image"`
	Highlights  datatypes.JSON `json:"highlights" gorm:"type:jsonb"`
}

type WhyCourse struct {
	ID                   uint   `json:"id" gorm:"primarykey"`
	Title                string `json:"title"`
	Description          string `json:"description" gorm:"type:text"`
	TitleOfNumber1       string `json:"title_of_number1" gorm:"column:title_of_number1"`
	DescriptionOfNumber1 string `json:"description_of_number1" gorm:"column:description_of_number1"`
	TitleOfNumber2       string `json:"title_of_number2" gorm:"column:title_of_number2"`
	DescriptionOfNumber2 string `json:"description_of_number2" gorm:"column:description_of_number2"`
}
