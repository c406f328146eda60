package get_day_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
)

// UseCase use case построения сетки расписания для экрана дня
type UseCase struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, salonRepo SalonRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		logger:          logger,
	}
}

// Execute строит 30-минутную сетку дня с привязкой записей к ячейкам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	week, err := uc.salonRepo.GetWorkingHours(ctx)
	if err != nil && !errors.Is(err, salonRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetDayGrid: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	day := domain.ResolveWorkingHours(req.Date, week)
	if day.Closed {
		uc.logger.Info("GetDayGrid: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Closed: true, Slots: []Slot{}}, nil
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetDayGrid: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	grid, err := domain.BuildDayGrid(day, appointments)
	if err != nil {
		uc.logger.Error("GetDayGrid: failed to build grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build grid: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(grid))
	for i, cell := range grid {
		slot := Slot{
			Time:  cell.Time,
			State: string(cell.State),
		}

		if cell.IsAnomalous() {
			// Несколько записей на одну ячейку - аномалия данных,
			// которую проверка конфликтов не должна была пропустить
			uc.logger.Error("GetDayGrid: %d overlapping appointments at %s on %s",
				len(cell.Occupants), cell.Time, req.Date.Format(domain.DateFormat))
			slot.Anomalous = true
		}

		for _, occ := range cell.Occupants {
			slot.Occupants = append(slot.Occupants, toSlotAppointment(occ))
		}
		if first := cell.Appointment(); first != nil {
			sa := toSlotAppointment(first)
			slot.Appointment = &sa
		}

		slots[i] = slot
	}

	uc.logger.Info("GetDayGrid: %d slots for %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}

func toSlotAppointment(appt *domain.Appointment) SlotAppointment {
	return SlotAppointment{
		ID:          appt.ID,
		ClientName:  appt.ClientName,
		ServiceName: appt.ServiceName,
		StartTime:   appt.StartTime,
		EndTime:     appt.EndTime,
		Status:      string(appt.Status),
	}
}
