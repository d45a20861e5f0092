package create_visit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	createVisit "github.com/m04kA/VetClinic-VisitService/internal/usecase/create_visit"
	"github.com/m04kA/VetClinic-VisitService/pkg/ptr"
)

func useCaseResponse() *createVisit.Response {
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	return &createVisit.Response{
		ID:              100,
		VetID:           1,
		PetID:           2,
		TreatmentRoomID: 3,
		StartDateTime:   start,
		EndDateTime:     start.Add(30 * time.Minute),
		DurationMinutes: 30,
		Price:           decimal.NewFromInt(1500),
		VisitType:       domain.VisitTypeRoutine,
		OperationType:   domain.OperationCheckup,
		Status:          domain.StatusScheduled,
		CreatedAt:       start,
		UpdatedAt:       start,
	}
}

func TestFromUseCaseResponse(t *testing.T) {
	resp := FromUseCaseResponse(useCaseResponse())

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "2025-06-16T10:00:00Z", resp.StartDateTime)
	assert.Equal(t, "2025-06-16T10:30:00Z", resp.EndDateTime)
	assert.Equal(t, "scheduled", resp.VisitStatus)

	// У нового визита описания нет, в JSON поле опускается
	assert.Nil(t, resp.VisitDescription)
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "visitDescription")
}

func TestFromUseCaseResponse_CarriesDescription(t *testing.T) {
	ucResp := useCaseResponse()
	ucResp.Description = ptr.Ptr("Плановый осмотр")

	resp := FromUseCaseResponse(ucResp)

	require.NotNil(t, resp.VisitDescription)
	assert.Equal(t, "Плановый осмотр", *resp.VisitDescription)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"visitDescription":"Плановый осмотр"`)
}
