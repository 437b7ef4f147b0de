package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateCampaignCreate(t *testing.T) {
	valid := func() *CampaignCreateRequest {
		return &CampaignCreateRequest{
			ShopID: primitive.NewObjectID(),
			Name:   "Summer Rewards",
			PointRules: []PointRuleRequest{
				{MinAmount: 0, MaxAmount: 99, Points: 5},
				{MinAmount: 100, MaxAmount: 199, Points: 15},
			},
			ThemeColor: "#FF8800",
		}
	}

	assert.Empty(t, ValidateCampaignCreate(valid()))

	t.Run("missing shop", func(t *testing.T) {
		req := valid()
		req.ShopID = primitive.NilObjectID
		assert.NotEmpty(t, ValidateCampaignCreate(req))
	})

	t.Run("rule max below min", func(t *testing.T) {
		req := valid()
		req.PointRules = []PointRuleRequest{{MinAmount: 200, MaxAmount: 100, Points: 5}}
		errs := ValidateCampaignCreate(req)
		assert.NotEmpty(t, errs)
		assert.Equal(t, "point_rules[0]", errs[0].Field)
	})

	t.Run("bad theme color", func(t *testing.T) {
		req := valid()
		req.ThemeColor = "orange"
		assert.NotEmpty(t, ValidateCampaignCreate(req))
	})
}

func TestValidateCampaignUpdate(t *testing.T) {
	name := "Renamed"
	assert.Empty(t, ValidateCampaignUpdate(&CampaignUpdateRequest{Name: &name}))

	bad := "x"
	assert.NotEmpty(t, ValidateCampaignUpdate(&CampaignUpdateRequest{Name: &bad}))
}
