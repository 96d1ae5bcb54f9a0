package service

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

func sanitizeCreate(in *model.CreateReport) {
	in.UID = strings.TrimSpace(in.UID)
	in.Type = strings.TrimSpace(in.Type)
	in.TypeID = strings.TrimSpace(in.TypeID)
	in.Summary = strings.TrimSpace(in.Summary)
}

func sanitizeUpdate(in *model.UpdateReport) {
	for _, s := range []*string{in.UID, in.Type, in.TypeID, in.Summary} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func newReport(in *model.CreateReport, now time.Time) *model.Report {
	var category int64
	if in.Category != nil {
		category = *in.Category
	}
	return &model.Report{
		UID:        in.UID,
		Type:       in.Type,
		TypeID:     in.TypeID,
		Category:   category,
		Summary:    in.Summary,
		State:      normalize.ReportState.Code(in.State),
		TypeData:   in.TypeData,
		Timestamps: model.NewTimestamps(now),
	}
}

func toDTO(report *model.Report) *model.ReportDTO {
	return &model.ReportDTO{
		ID:            report.ID.Hex(),
		UID:           report.UID,
		Type:          report.Type,
		TypeID:        report.TypeID,
		Category:      report.Category,
		Summary:       report.Summary,
		State:         normalize.ReportState.FromCode(report.State),
		TypeData:      report.TypeData,
		TimestampsDTO: report.Timestamps.DTO(),
	}
}

func toDTOs(reports []*model.Report) []*model.ReportDTO {
	out := make([]*model.ReportDTO, 0, len(reports))
	for _, report := range reports {
		out = append(out, toDTO(report))
	}
	return out
}

func updateSet(in *model.UpdateReport) bson.M {
	set := bson.M{}
	if in.UID != nil {
		set["uid"] = *in.UID
	}
	if in.Type != nil {
		set["type"] = *in.Type
	}
	if in.TypeID != nil {
		set["type_id"] = *in.TypeID
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Summary != nil {
		set["summary"] = *in.Summary
	}
	if !in.State.IsAbsent() {
		set["state"] = normalize.ReportState.Code(in.State)
	}
	if in.TypeData != nil {
		set["type_data"] = in.TypeData
	}
	return set
}
