package rider

import (
	"zapshift/internal/entities"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		RiderDistrict: r.RiderDistrict,
		Status:        entities.RiderStatusType(r.Status),
		WorkStatus:    entities.RiderWorkStatusType(r.WorkStatus),
		CreatedAt:     r.CreatedAt,
	}
}

func FromDomainModify(riderModify *entities.RiderModify) *RiderModifyDB {
	if riderModify == nil {
		return nil
	}

	riderDB := &RiderModifyDB{
		ID:            riderModify.ID,
		Name:          riderModify.Name,
		Email:         riderModify.Email,
		Phone:         riderModify.Phone,
		RiderDistrict: riderModify.RiderDistrict,
	}
	if riderModify.Status != nil {
		status := riderModify.Status.String()
		riderDB.Status = &status
	}
	if riderModify.WorkStatus != nil {
		workStatus := riderModify.WorkStatus.String()
		riderDB.WorkStatus = &workStatus
	}
	return riderDB
}

func ToDomainList(ridersDB []RiderDB) []entities.Rider {
	if len(ridersDB) == 0 {
		return []entities.Rider{}
	}

	result := make([]entities.Rider, len(ridersDB))
	for i := range ridersDB {
		result[i] = *ToDomain(&ridersDB[i])
	}
	return result
}
