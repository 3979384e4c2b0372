package domain

import "fmt"

// PlaceType is the stable integer code of a fine-grained place category.
// Codes are fixed: never reorder or reuse them.
type PlaceType int64

const (
	PlaceTypeAccounting PlaceType = iota
	PlaceTypeAdministrativeAreaLevel1
	PlaceTypeAdministrativeAreaLevel2
	PlaceTypeAdministrativeAreaLevel3
	PlaceTypeAdministrativeAreaLevel4
	PlaceTypeAdministrativeAreaLevel5
	PlaceTypeAirport
	PlaceTypeAmusementPark
	PlaceTypeAquarium
	PlaceTypeArchipelago
	PlaceTypeArtGallery
	PlaceTypeATM
	PlaceTypeBakery
	PlaceTypeBank
	PlaceTypeBar
	PlaceTypeBeautySalon
	PlaceTypeBicycleStore
	PlaceTypeBookStore
	PlaceTypeBowlingAlley
	PlaceTypeBusStation
	PlaceTypeCafe
	PlaceTypeCampground
	PlaceTypeCarDealer
	PlaceTypeCarRental
	PlaceTypeCarRepair
	PlaceTypeCarWash
	PlaceTypeCasino
	PlaceTypeCemetery
	PlaceTypeChurch
	PlaceTypeCityHall
	PlaceTypeClothingStore
	PlaceTypeColloquialArea
	PlaceTypeContinent
	PlaceTypeConvenienceStore
	PlaceTypeCountry
	PlaceTypeCourthouse
	PlaceTypeDentist
	PlaceTypeDepartmentStore
	PlaceTypeDoctor
	PlaceTypeDrugstore
	PlaceTypeElectrician
	PlaceTypeElectronicsStore
	PlaceTypeEmbassy
	PlaceTypeEstablishment
	PlaceTypeFinance
	PlaceTypeFireStation
	PlaceTypeFloor
	PlaceTypeFlorist
	PlaceTypeFood
	PlaceTypeFuneralHome
	PlaceTypeFurnitureStore
	PlaceTypeGasStation
	PlaceTypeGeneralContractor
	PlaceTypeGeocode
	PlaceTypeGroceryOrSupermarket
	PlaceTypeGym
	PlaceTypeHairCare
	PlaceTypeHardwareStore
	PlaceTypeHealth
	PlaceTypeHinduTemple
	PlaceTypeHomeGoodsStore
	PlaceTypeHospital
	PlaceTypeInsuranceAgency
	PlaceTypeIntersection
	PlaceTypeJewelryStore
	PlaceTypeLaundry
	PlaceTypeLawyer
	PlaceTypeLightRailStation
	PlaceTypeLiquorStore
	PlaceTypeLocality
	PlaceTypeLocalGovernmentOffice
	PlaceTypeLocksmith
	PlaceTypeLodging
	PlaceTypeMealDelivery
	PlaceTypeMealTakeaway
	PlaceTypeMosque
	PlaceTypeMovieRental
	PlaceTypeMovieTheater
	PlaceTypeMovingCompany
	PlaceTypeMuseum
	PlaceTypeNaturalFeature
	PlaceTypeNeighborhood
	PlaceTypeNightClub
	PlaceTypeOther
	PlaceTypePainter
	PlaceTypePark
	PlaceTypeParking
	PlaceTypePetStore
	PlaceTypePharmacy
	PlaceTypePhysiotherapist
	PlaceTypePlaceOfWorship
	PlaceTypePlumber
	PlaceTypePlusCode
	PlaceTypePointOfInterest
	PlaceTypePolice
	PlaceTypePolitical
	PlaceTypePostalCode
	PlaceTypePostalCodePrefix
	PlaceTypePostalCodeSuffix
	PlaceTypePostalTown
	PlaceTypePostBox
	PlaceTypePostOffice
	PlaceTypePremise
	PlaceTypePrimarySchool
	PlaceTypeRealEstateAgency
	PlaceTypeRestaurant
	PlaceTypeRoofingContractor
	PlaceTypeRoom
	PlaceTypeRoute
	PlaceTypeRVPark
	PlaceTypeSchool
	PlaceTypeSecondarySchool
	PlaceTypeShoeStore
	PlaceTypeShoppingMall
	PlaceTypeSpa
	PlaceTypeStadium
	PlaceTypeStorage
	PlaceTypeStore
	PlaceTypeStreetAddress
	PlaceTypeStreetNumber
	PlaceTypeSublocality
	PlaceTypeSublocalityLevel1
	PlaceTypeSublocalityLevel2
	PlaceTypeSublocalityLevel3
	PlaceTypeSublocalityLevel4
	PlaceTypeSublocalityLevel5
	PlaceTypeSubpremise
	PlaceTypeSubwayStation
	PlaceTypeSupermarket
	PlaceTypeSynagogue
	PlaceTypeTaxiStand
	PlaceTypeTouristAttraction
	PlaceTypeTownSquare
	PlaceTypeTrainStation
	PlaceTypeTransitStation
	PlaceTypeTravelAgency
	PlaceTypeUniversity
	PlaceTypeVeterinaryCare
	PlaceTypeZoo
)

type placeTypeEntry struct {
	name   string
	native string
}

// placeTypes is the authoritative code -> (symbolic name, vendor type) table.
var placeTypes = [...]placeTypeEntry{
	PlaceTypeAccounting:               {"ACCOUNTING", "accounting"},
	PlaceTypeAdministrativeAreaLevel1: {"ADMINISTRATIVE_AREA_LEVEL_1", "administrative_area_level_1"},
	PlaceTypeAdministrativeAreaLevel2: {"ADMINISTRATIVE_AREA_LEVEL_2", "administrative_area_level_2"},
	PlaceTypeAdministrativeAreaLevel3: {"ADMINISTRATIVE_AREA_LEVEL_3", "administrative_area_level_3"},
	PlaceTypeAdministrativeAreaLevel4: {"ADMINISTRATIVE_AREA_LEVEL_4", "administrative_area_level_4"},
	PlaceTypeAdministrativeAreaLevel5: {"ADMINISTRATIVE_AREA_LEVEL_5", "administrative_area_level_5"},
	PlaceTypeAirport:                  {"AIRPORT", "airport"},
	PlaceTypeAmusementPark:            {"AMUSEMENT_PARK", "amusement_park"},
	PlaceTypeAquarium:                 {"AQUARIUM", "aquarium"},
	PlaceTypeArchipelago:              {"ARCHIPELAGO", "archipelago"},
	PlaceTypeArtGallery:               {"ART_GALLERY", "art_gallery"},
	PlaceTypeATM:                      {"ATM", "atm"},
	PlaceTypeBakery:                   {"BAKERY", "bakery"},
	PlaceTypeBank:                     {"BANK", "bank"},
	PlaceTypeBar:                      {"BAR", "bar"},
	PlaceTypeBeautySalon:              {"BEAUTY_SALON", "beauty_salon"},
	PlaceTypeBicycleStore:             {"BICYCLE_STORE", "bicycle_store"},
	PlaceTypeBookStore:                {"BOOK_STORE", "book_store"},
	PlaceTypeBowlingAlley:             {"BOWLING_ALLEY", "bowling_alley"},
	PlaceTypeBusStation:               {"BUS_STATION", "bus_station"},
	PlaceTypeCafe:                     {"CAFE", "cafe"},
	PlaceTypeCampground:               {"CAMPGROUND", "campground"},
	PlaceTypeCarDealer:                {"CAR_DEALER", "car_dealer"},
	PlaceTypeCarRental:                {"CAR_RENTAL", "car_rental"},
	PlaceTypeCarRepair:                {"CAR_REPAIR", "car_repair"},
	PlaceTypeCarWash:                  {"CAR_WASH", "car_wash"},
	PlaceTypeCasino:                   {"CASINO", "casino"},
	PlaceTypeCemetery:                 {"CEMETERY", "cemetery"},
	PlaceTypeChurch:                   {"CHURCH", "church"},
	PlaceTypeCityHall:                 {"CITY_HALL", "city_hall"},
	PlaceTypeClothingStore:            {"CLOTHING_STORE", "clothing_store"},
	PlaceTypeColloquialArea:           {"COLLOQUIAL_AREA", "colloquial_area"},
	PlaceTypeContinent:                {"CONTINENT", "continent"},
	PlaceTypeConvenienceStore:         {"CONVENIENCE_STORE", "convenience_store"},
	PlaceTypeCountry:                  {"COUNTRY", "country"},
	PlaceTypeCourthouse:               {"COURTHOUSE", "courthouse"},
	PlaceTypeDentist:                  {"DENTIST", "dentist"},
	PlaceTypeDepartmentStore:          {"DEPARTMENT_STORE", "department_store"},
	PlaceTypeDoctor:                   {"DOCTOR", "doctor"},
	PlaceTypeDrugstore:                {"DRUGSTORE", "drugstore"},
	PlaceTypeElectrician:              {"ELECTRICIAN", "electrician"},
	PlaceTypeElectronicsStore:         {"ELECTRONICS_STORE", "electronics_store"},
	PlaceTypeEmbassy:                  {"EMBASSY", "embassy"},
	PlaceTypeEstablishment:            {"ESTABLISHMENT", "establishment"},
	PlaceTypeFinance:                  {"FINANCE", "finance"},
	PlaceTypeFireStation:              {"FIRE_STATION", "fire_station"},
	PlaceTypeFloor:                    {"FLOOR", "floor"},
	PlaceTypeFlorist:                  {"FLORIST", "florist"},
	PlaceTypeFood:                     {"FOOD", "food"},
	PlaceTypeFuneralHome:              {"FUNERAL_HOME", "funeral_home"},
	PlaceTypeFurnitureStore:           {"FURNITURE_STORE", "furniture_store"},
	PlaceTypeGasStation:               {"GAS_STATION", "gas_station"},
	PlaceTypeGeneralContractor:        {"GENERAL_CONTRACTOR", "general_contractor"},
	PlaceTypeGeocode:                  {"GEOCODE", "geocode"},
	PlaceTypeGroceryOrSupermarket:     {"GROCERY_OR_SUPERMARKET", "grocery_or_supermarket"},
	PlaceTypeGym:                      {"GYM", "gym"},
	PlaceTypeHairCare:                 {"HAIR_CARE", "hair_care"},
	PlaceTypeHardwareStore:            {"HARDWARE_STORE", "hardware_store"},
	PlaceTypeHealth:                   {"HEALTH", "health"},
	PlaceTypeHinduTemple:              {"HINDU_TEMPLE", "hindu_temple"},
	PlaceTypeHomeGoodsStore:           {"HOME_GOODS_STORE", "home_goods_store"},
	PlaceTypeHospital:                 {"HOSPITAL", "hospital"},
	PlaceTypeInsuranceAgency:          {"INSURANCE_AGENCY", "insurance_agency"},
	PlaceTypeIntersection:             {"INTERSECTION", "intersection"},
	PlaceTypeJewelryStore:             {"JEWELRY_STORE", "jewelry_store"},
	PlaceTypeLaundry:                  {"LAUNDRY", "laundry"},
	PlaceTypeLawyer:                   {"LAWYER", "lawyer"},
	PlaceTypeLightRailStation:         {"LIGHT_RAIL_STATION", "light_rail_station"},
	PlaceTypeLiquorStore:              {"LIQUOR_STORE", "liquor_store"},
	PlaceTypeLocality:                 {"LOCALITY", "locality"},
	PlaceTypeLocalGovernmentOffice:    {"LOCAL_GOVERNMENT_OFFICE", "local_government_office"},
	PlaceTypeLocksmith:                {"LOCKSMITH", "locksmith"},
	PlaceTypeLodging:                  {"LODGING", "lodging"},
	PlaceTypeMealDelivery:             {"MEAL_DELIVERY", "meal_delivery"},
	PlaceTypeMealTakeaway:             {"MEAL_TAKEAWAY", "meal_takeaway"},
	PlaceTypeMosque:                   {"MOSQUE", "mosque"},
	PlaceTypeMovieRental:              {"MOVIE_RENTAL", "movie_rental"},
	PlaceTypeMovieTheater:             {"MOVIE_THEATER", "movie_theater"},
	PlaceTypeMovingCompany:            {"MOVING_COMPANY", "moving_company"},
	PlaceTypeMuseum:                   {"MUSEUM", "museum"},
	PlaceTypeNaturalFeature:           {"NATURAL_FEATURE", "natural_feature"},
	PlaceTypeNeighborhood:             {"NEIGHBORHOOD", "neighborhood"},
	PlaceTypeNightClub:                {"NIGHT_CLUB", "night_club"},
	PlaceTypeOther:                    {"OTHER", "other"},
	PlaceTypePainter:                  {"PAINTER", "painter"},
	PlaceTypePark:                     {"PARK", "park"},
	PlaceTypeParking:                  {"PARKING", "parking"},
	PlaceTypePetStore:                 {"PET_STORE", "pet_store"},
	PlaceTypePharmacy:                 {"PHARMACY", "pharmacy"},
	PlaceTypePhysiotherapist:          {"PHYSIOTHERAPIST", "physiotherapist"},
	PlaceTypePlaceOfWorship:           {"PLACE_OF_WORSHIP", "place_of_worship"},
	PlaceTypePlumber:                  {"PLUMBER", "plumber"},
	PlaceTypePlusCode:                 {"PLUS_CODE", "plus_code"},
	PlaceTypePointOfInterest:          {"POINT_OF_INTEREST", "point_of_interest"},
	PlaceTypePolice:                   {"POLICE", "police"},
	PlaceTypePolitical:                {"POLITICAL", "political"},
	PlaceTypePostalCode:               {"POSTAL_CODE", "postal_code"},
	PlaceTypePostalCodePrefix:         {"POSTAL_CODE_PREFIX", "postal_code_prefix"},
	PlaceTypePostalCodeSuffix:         {"POSTAL_CODE_SUFFIX", "postal_code_suffix"},
	PlaceTypePostalTown:               {"POSTAL_TOWN", "postal_town"},
	PlaceTypePostBox:                  {"POST_BOX", "post_box"},
	PlaceTypePostOffice:               {"POST_OFFICE", "post_office"},
	PlaceTypePremise:                  {"PREMISE", "premise"},
	PlaceTypePrimarySchool:            {"PRIMARY_SCHOOL", "primary_school"},
	PlaceTypeRealEstateAgency:         {"REAL_ESTATE_AGENCY", "real_estate_agency"},
	PlaceTypeRestaurant:               {"RESTAURANT", "restaurant"},
	PlaceTypeRoofingContractor:        {"ROOFING_CONTRACTOR", "roofing_contractor"},
	PlaceTypeRoom:                     {"ROOM", "room"},
	PlaceTypeRoute:                    {"ROUTE", "route"},
	PlaceTypeRVPark:                   {"RV_PARK", "rv_park"},
	PlaceTypeSchool:                   {"SCHOOL", "school"},
	PlaceTypeSecondarySchool:          {"SECONDARY_SCHOOL", "secondary_school"},
	PlaceTypeShoeStore:                {"SHOE_STORE", "shoe_store"},
	PlaceTypeShoppingMall:             {"SHOPPING_MALL", "shopping_mall"},
	PlaceTypeSpa:                      {"SPA", "spa"},
	PlaceTypeStadium:                  {"STADIUM", "stadium"},
	PlaceTypeStorage:                  {"STORAGE", "storage"},
	PlaceTypeStore:                    {"STORE", "store"},
	PlaceTypeStreetAddress:            {"STREET_ADDRESS", "street_address"},
	PlaceTypeStreetNumber:             {"STREET_NUMBER", "street_number"},
	PlaceTypeSublocality:              {"SUBLOCALITY", "sublocality"},
	PlaceTypeSublocalityLevel1:        {"SUBLOCALITY_LEVEL_1", "sublocality_level_1"},
	PlaceTypeSublocalityLevel2:        {"SUBLOCALITY_LEVEL_2", "sublocality_level_2"},
	PlaceTypeSublocalityLevel3:        {"SUBLOCALITY_LEVEL_3", "sublocality_level_3"},
	PlaceTypeSublocalityLevel4:        {"SUBLOCALITY_LEVEL_4", "sublocality_level_4"},
	PlaceTypeSublocalityLevel5:        {"SUBLOCALITY_LEVEL_5", "sublocality_level_5"},
	PlaceTypeSubpremise:               {"SUBPREMISE", "subpremise"},
	PlaceTypeSubwayStation:            {"SUBWAY_STATION", "subway_station"},
	PlaceTypeSupermarket:              {"SUPERMARKET", "supermarket"},
	PlaceTypeSynagogue:                {"SYNAGOGUE", "synagogue"},
	PlaceTypeTaxiStand:                {"TAXI_STAND", "taxi_stand"},
	PlaceTypeTouristAttraction:        {"TOURIST_ATTRACTION", "tourist_attraction"},
	PlaceTypeTownSquare:               {"TOWN_SQUARE", "town_square"},
	PlaceTypeTrainStation:             {"TRAIN_STATION", "train_station"},
	PlaceTypeTransitStation:           {"TRANSIT_STATION", "transit_station"},
	PlaceTypeTravelAgency:             {"TRAVEL_AGENCY", "travel_agency"},
	PlaceTypeUniversity:               {"UNIVERSITY", "university"},
	PlaceTypeVeterinaryCare:           {"VETERINARY_CARE", "veterinary_care"},
	PlaceTypeZoo:                      {"ZOO", "zoo"},
}

var placeTypesByNative = func() map[string]PlaceType {
	m := make(map[string]PlaceType, len(placeTypes))
	for code, e := range placeTypes {
		m[e.native] = PlaceType(code)
	}
	return m
}()

// PlaceTypes returns every known place type in code order.
func PlaceTypes() []PlaceType {
	out := make([]PlaceType, len(placeTypes))
	for i := range placeTypes {
		out[i] = PlaceType(i)
	}
	return out
}

// Valid reports whether t is a known code.
func (t PlaceType) Valid() bool {
	return t >= 0 && int(t) < len(placeTypes)
}

// Name returns the symbolic name, e.g. "ADMINISTRATIVE_AREA_LEVEL_1".
func (t PlaceType) Name() string {
	if !t.Valid() {
		return fmt.Sprintf("PlaceType(%d)", int64(t))
	}
	return placeTypes[t].name
}

// Native returns the vendor type string, e.g. "administrative_area_level_1".
func (t PlaceType) Native() string {
	if !t.Valid() {
		return ""
	}
	return placeTypes[t].native
}

func (t PlaceType) String() string { return t.Name() }

// PlaceTypeFromNative looks up a vendor type string.
func PlaceTypeFromNative(native string) (PlaceType, bool) {
	t, ok := placeTypesByNative[native]
	return t, ok
}
