package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"cloudops-workers/internal/common/aws"
)

const categoryDatabase = "database"

func rdsInstance(key string) Field {
	return obj(key, "",
		str("DBInstanceIdentifier", ""),
		str("DBInstanceClass", ""),
		str("DBInstanceStatus", ""),
		str("Engine", ""),
		str("EngineVersion", ""),
		str("DBInstanceArn", ""),
		obj("Endpoint", "", str("Address", ""), integer("Port", ""), str("HostedZoneId", "")),
		boolean("MultiAZ", ""),
		integer("AllocatedStorage", ""),
	)
}

func rdsSnapshot(key string) Field {
	return obj(key, "",
		str("DBSnapshotIdentifier", ""),
		str("DBInstanceIdentifier", ""),
		str("DBSnapshotArn", ""),
		str("SnapshotType", ""),
		str("Status", ""),
		str("SnapshotCreateTime", ""),
		integer("PercentProgress", ""),
	)
}

func rdsFilters() Field {
	return list("Filters", "", element(str("Name", "").req(), strList("Values", "").req()))
}

func rdsOperations() []Descriptor {
	return []Descriptor{
		{
			Name:        "rds-describe-db-instances",
			Service:     aws.ServiceRDS,
			Action:      "DescribeDBInstances",
			DisplayName: "RDS Describe DB Instances",
			Description: "Returns one page of DB instances.",
			Category:    categoryDatabase,
			InputFields: []Field{
				str("DBInstanceIdentifier", "Restrict to one instance."),
				rdsFilters(),
				integer("MaxRecords", "Page size, 20 to 100."),
				str("Marker", "Continuation token from a previous call."),
			},
			OutputSchema: []Field{
				list("DBInstances", "", rdsInstance("")),
				str("Marker", "Present when more results exist."),
			},
			call: bind((*rds.Client).DescribeDBInstances),
		},
		{
			Name:        "rds-start-db-instance",
			Service:     aws.ServiceRDS,
			Action:      "StartDBInstance",
			DisplayName: "RDS Start DB Instance",
			Description: "Starts a stopped DB instance.",
			Category:    categoryDatabase,
			InputFields: []Field{
				str("DBInstanceIdentifier", "").req(),
			},
			OutputSchema: []Field{rdsInstance("DBInstance")},
			call:         bind((*rds.Client).StartDBInstance),
		},
		{
			Name:        "rds-stop-db-instance",
			Service:     aws.ServiceRDS,
			Action:      "StopDBInstance",
			DisplayName: "RDS Stop DB Instance",
			Description: "Stops a running DB instance, optionally taking a snapshot first.",
			Category:    categoryDatabase,
			InputFields: []Field{
				str("DBInstanceIdentifier", "").req(),
				str("DBSnapshotIdentifier", "Snapshot to create before stopping."),
			},
			OutputSchema: []Field{rdsInstance("DBInstance")},
			call:         bind((*rds.Client).StopDBInstance),
		},
		{
			Name:        "rds-reboot-db-instance",
			Service:     aws.ServiceRDS,
			Action:      "RebootDBInstance",
			DisplayName: "RDS Reboot DB Instance",
			Description: "Reboots a DB instance.",
			Category:    categoryDatabase,
			InputFields: []Field{
				str("DBInstanceIdentifier", "").req(),
				boolean("ForceFailover", "Reboot through a Multi-AZ failover."),
			},
			OutputSchema: []Field{rdsInstance("DBInstance")},
			call:         bind((*rds.Client).RebootDBInstance),
		},
		{
			Name:        "rds-create-db-snapshot",
			Service:     aws.ServiceRDS,
			Action:      "CreateDBSnapshot",
			DisplayName: "RDS Create DB Snapshot",
			Description: "Creates a manual snapshot of a DB instance.",
			Category:    categoryDatabase,
			InputFields: []Field{
				str("DBInstanceIdentifier", "").req(),
				str("DBSnapshotIdentifier", "").req(),
				list("Tags", "", element(str("Key", ""), str("Value", ""))),
			},
			OutputSchema: []Field{rdsSnapshot("DBSnapshot")},
			call:         bind((*rds.Client).CreateDBSnapshot),
		},
		{
			Name:        "rds-describe-db-snapshots",
			Service:     aws.ServiceRDS,
			Action:      "DescribeDBSnapshots",
			DisplayName: "RDS Describe DB Snapshots",
			Description: "Returns one page of DB snapshots.",
			Category:    categoryDatabase,
			InputFields: []Field{
				str("DBInstanceIdentifier", ""),
				str("DBSnapshotIdentifier", ""),
				str("SnapshotType", "automated, manual, shared, public or awsbackup."),
				rdsFilters(),
				integer("MaxRecords", ""),
				str("Marker", "Continuation token from a previous call."),
			},
			OutputSchema: []Field{
				list("DBSnapshots", "", rdsSnapshot("")),
				str("Marker", "Present when more results exist."),
			},
			call: bind((*rds.Client).DescribeDBSnapshots),
		},
	}
}
