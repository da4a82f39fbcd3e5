package cmd

import (
	"propertyservice/internal/adapters/out/postgres"
	"propertyservice/internal/core/application/usecases/commands"
	"propertyservice/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) listingUoWFactory() commands.ListingUoWFactory {
	return FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	return commands.NewCreateListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateUpdateListingCommandHandler() commands.UpdateListingCommandHandler {
	return commands.NewUpdateListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateChangeApprovalCommandHandler() commands.ChangeApprovalCommandHandler {
	return commands.NewChangeApprovalCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateDeleteListingCommandHandler() commands.DeleteListingCommandHandler {
	return commands.NewDeleteListingCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateArchiveSoldListingsCommandHandler() commands.ArchiveSoldListingsCommandHandler {
	return commands.NewArchiveSoldListingsCommandHandler(c.listingUoWFactory())
}

func (c *CompositionRoot) CreateGetListingByIDQueryHandler() queries.GetListingByIDQueryHandler {
	return queries.NewGetListingByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllListingsQueryHandler() queries.ListAllListingsQueryHandler {
	return queries.NewListAllListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListApprovedListingsQueryHandler() queries.ListApprovedListingsQueryHandler {
	return queries.NewListApprovedListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPendingListingsQueryHandler() queries.ListPendingListingsQueryHandler {
	return queries.NewListPendingListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOwnerListingsQueryHandler() queries.ListOwnerListingsQueryHandler {
	return queries.NewListOwnerListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFilterListingsQueryHandler() queries.FilterListingsQueryHandler {
	return queries.NewFilterListingsQueryHandler(c.gormDB)
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}
