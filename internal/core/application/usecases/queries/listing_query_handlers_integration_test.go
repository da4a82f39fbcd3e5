package queries_test

import (
	"context"
	"testing"
	"time"

	"propertyservice/internal/adapters/out/postgres/listingrepo"
	"propertyservice/internal/core/application/usecases/queries"
	"propertyservice/internal/core/domain/model/kernel"
	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding data outside a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type ListingQueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *listingrepo.GormListingRepository
}

func (suite *ListingQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&listingrepo.LocationDTO{}, &listingrepo.PropertyDTO{})
	suite.Require().NoError(err)

	suite.repo = listingrepo.NewGormListingRepository(db, &mockAggregateTracker{})
}

func (suite *ListingQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListingQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE properties, locations CASCADE").Error
	suite.Require().NoError(err)
}

type seedSpec struct {
	title    string
	ptype    listing.PropertyType
	status   listing.Status
	region   listing.Region
	approval listing.ApprovalStatus
	ownerID  kernel.UUID
}

func (suite *ListingQueryHandlersTestSuite) seed(spec seedSpec) *listing.Property {
	location, err := listing.NewLocation("Durbar Marg", "Kathmandu", spec.region, "", 0, nil, nil)
	suite.Require().NoError(err)

	ownerID := spec.ownerID
	if err = ownerID.Validate(); err != nil {
		ownerID = kernel.NewUUID()
	}

	property, err := listing.NewProperty(kernel.NewUUID(), spec.title, "",
		spec.ptype, spec.status, location, ownerID)
	suite.Require().NoError(err)

	switch spec.approval {
	case listing.ApprovalPending:
		property.Submit()
	case listing.ApprovalApproved:
		property.Approve()
	case listing.ApprovalRejected:
		property.Reject()
	case listing.ApprovalArchived:
		property.Archive()
	}

	suite.Require().NoError(suite.repo.Add(context.Background(), property))
	return property
}

func (suite *ListingQueryHandlersTestSuite) TestGetListingByID_ReturnsFullReadModel() {
	property := suite.seed(seedSpec{
		title: "Sunny plot", ptype: listing.TypeHouse, status: listing.StatusAvailable,
		region: listing.RegionBagmati, approval: listing.ApprovalDraft,
	})

	query, err := queries.NewGetListingByIDQuery(property.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetListingByIDQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(property.ID().String(), result.ID.String())
	suite.Equal("Sunny plot", result.Title)
	suite.Equal("House", result.PropertyType)
	suite.Equal("Available", result.Status)
	suite.Equal("draft", result.ApprovalStatus)
	suite.Equal("Kathmandu", result.Location.City)
	suite.Equal("Bagmati", result.Location.State)
	suite.Equal("Nepal", result.Location.Country)
	suite.Equal(44200, result.Location.Zipcode)
	suite.NotZero(result.Location.ID)
	suite.False(result.UpdatedAt.IsZero())
}

func (suite *ListingQueryHandlersTestSuite) TestGetListingByID_NotFound() {
	query, err := queries.NewGetListingByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetListingByIDQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListingQueryHandlersTestSuite) TestListApproved_ExcludesOtherStates() {
	approved := suite.seed(seedSpec{title: "Approved one", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalApproved})
	suite.seed(seedSpec{title: "Still draft", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalDraft})
	suite.seed(seedSpec{title: "In review", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalPending})

	handler := queries.NewListApprovedListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(),
		queries.NewListApprovedListingsQuery(queries.NewPage(1, 10)))

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(approved.ID().String(), result.Items[0].ID.String())
	suite.Equal(int64(1), result.Meta.TotalItems)
}

func (suite *ListingQueryHandlersTestSuite) TestListPending_ReturnsReviewQueue() {
	suite.seed(seedSpec{title: "Approved one", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalApproved})
	pending := suite.seed(seedSpec{title: "In review", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalPending})

	handler := queries.NewListPendingListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(),
		queries.NewListPendingListingsQuery(queries.NewPage(1, 10)))

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(pending.ID().String(), result.Items[0].ID.String())
}

func (suite *ListingQueryHandlersTestSuite) TestListAll_PaginatesAndCounts() {
	for range 7 {
		suite.seed(seedSpec{title: "Listing", ptype: listing.TypeLand,
			status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalDraft})
	}

	handler := queries.NewListAllListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(),
		queries.NewListAllListingsQuery(queries.NewPage(2, 3)))

	suite.Require().NoError(err)
	suite.Len(result.Items, 3)
	suite.Equal(int64(7), result.Meta.TotalItems)
	suite.Equal(3, result.Meta.TotalPages)
	suite.Equal(2, result.Meta.CurrentPage)
	suite.Equal(3, result.Meta.PageSize)
}

func (suite *ListingQueryHandlersTestSuite) TestListAll_PastEndIsEmptyNotError() {
	suite.seed(seedSpec{title: "Only one", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalDraft})

	handler := queries.NewListAllListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(),
		queries.NewListAllListingsQuery(queries.NewPage(5, 10)))

	suite.Require().NoError(err)
	suite.Empty(result.Items)
	suite.Equal(int64(1), result.Meta.TotalItems)
}

func (suite *ListingQueryHandlersTestSuite) TestListOwner_ReturnsAllStatesForOwner() {
	ownerID := kernel.NewUUID()
	suite.seed(seedSpec{title: "Mine draft", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati,
		approval: listing.ApprovalDraft, ownerID: ownerID})
	suite.seed(seedSpec{title: "Mine approved", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati,
		approval: listing.ApprovalApproved, ownerID: ownerID})
	suite.seed(seedSpec{title: "Someone else's", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati,
		approval: listing.ApprovalApproved})

	query, err := queries.NewListOwnerListingsQuery(ownerID, queries.NewPage(1, 10))
	suite.Require().NoError(err)

	handler := queries.NewListOwnerListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Items, 2)
	for _, item := range result.Items {
		suite.Equal(ownerID.String(), item.OwnerID.String())
	}
}

func (suite *ListingQueryHandlersTestSuite) TestListOwner_EmptyIsAnError() {
	query, err := queries.NewListOwnerListingsQuery(kernel.NewUUID(), queries.NewPage(1, 10))
	suite.Require().NoError(err)

	handler := queries.NewListOwnerListingsQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrOwnerListingsNotFound)
}

func (suite *ListingQueryHandlersTestSuite) TestFilter_CombinesCriteriaWithAnd() {
	match := suite.seed(seedSpec{title: "Match", ptype: listing.TypeHouse,
		status: listing.StatusAvailable, region: listing.RegionGandaki, approval: listing.ApprovalApproved})
	suite.seed(seedSpec{title: "Wrong region", ptype: listing.TypeHouse,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalApproved})
	suite.seed(seedSpec{title: "Wrong type", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionGandaki, approval: listing.ApprovalApproved})
	suite.seed(seedSpec{title: "Not approved", ptype: listing.TypeHouse,
		status: listing.StatusAvailable, region: listing.RegionGandaki, approval: listing.ApprovalPending})

	// Mixed-case raw values, normalized before matching.
	query, err := queries.NewFilterListingsQuery(
		strPtr("available"), strPtr("HOUSE"), strPtr("gandaki"), queries.NewPage(1, 10))
	suite.Require().NoError(err)

	handler := queries.NewFilterListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(match.ID().String(), result.Items[0].ID.String())
}

func (suite *ListingQueryHandlersTestSuite) TestFilter_NoCriteriaReturnsAllApproved() {
	suite.seed(seedSpec{title: "Approved one", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalApproved})
	suite.seed(seedSpec{title: "Approved two", ptype: listing.TypeHouse,
		status: listing.StatusSold, region: listing.RegionKoshi, approval: listing.ApprovalApproved})
	suite.seed(seedSpec{title: "Draft", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalDraft})

	query, err := queries.NewFilterListingsQuery(nil, nil, nil, queries.NewPage(1, 10))
	suite.Require().NoError(err)

	handler := queries.NewFilterListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Items, 2)
}

func (suite *ListingQueryHandlersTestSuite) TestList_SortedByLastModificationDescending() {
	first := suite.seed(seedSpec{title: "Older", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalDraft})
	second := suite.seed(seedSpec{title: "Newer", ptype: listing.TypeLand,
		status: listing.StatusAvailable, region: listing.RegionBagmati, approval: listing.ApprovalDraft})

	// Touch the first listing so it becomes the most recently modified.
	loaded, err := suite.repo.Get(context.Background(), first.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Rename("Older but touched"))
	suite.Require().NoError(suite.repo.Update(context.Background(), loaded))

	handler := queries.NewListAllListingsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(),
		queries.NewListAllListingsQuery(queries.NewPage(1, 10)))

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 2)
	suite.Equal(first.ID().String(), result.Items[0].ID.String())
	suite.Equal(second.ID().String(), result.Items[1].ID.String())
}

func TestListingQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(ListingQueryHandlersTestSuite))
}
