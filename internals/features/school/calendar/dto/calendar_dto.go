package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTask = "task"
	EventExam = "exam"
)

type Event struct {
	TaskID        uuid.UUID  `json:"taskId"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	SubjectName   string     `json:"subjectName"`
	ClassGroup    string     `json:"classGroup"`
	Date          time.Time  `json:"date"`
	DisplayStatus string     `json:"displayStatus"`
	StudentID     *uuid.UUID `json:"studentId,omitempty"`
	StudentName   string     `json:"studentName,omitempty"`
}

type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}
