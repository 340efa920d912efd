package requests

import "unidash-service/internal/app/models"

type MatchSchedule struct {
	Schedule   string `json:"schedule"`
	Day        string `json:"day" validate:"required,weekday"`
	GroupIndex int    `json:"group_index" validate:"min=0,max=13"`
}

type PreviewTimetable struct {
	Loads []models.FacultyLoad `json:"loads" validate:"required,dive"`
}
