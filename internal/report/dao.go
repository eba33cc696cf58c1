package report

import (
	"fmt"
	"github.com/packagewjx/nmon-summary/pkg/core"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
	"os"
)

type Dao interface {
	DB() *gorm.DB

	// SaveSummaries 保存汇总结果。文件名已存在的记录更新，其余创建
	SaveSummaries(results []*core.FileResult) error
}

type daoImpl struct {
	db     *gorm.DB
	logger *log.Logger
}

var _ Dao = &daoImpl{}

// NewDao 连接host指定的Mysql服务器并建表。密码从环境变量MYSQL_PASSWORD
// 读取，没有设置时为空
func NewDao(host string) (Dao, error) {
	databaseURL := fmt.Sprintf("root:%s@tcp(%s)/nmon?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("MYSQL_PASSWORD"), host)
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "", 0), logger.Config{
			LogLevel: logger.Silent,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "连接数据库错误")
	}

	err = db.AutoMigrate(&NmonSummaryDO{})
	if err != nil {
		return nil, errors.Wrap(err, "创建表格时出现异常")
	}

	return &daoImpl{
		db:     db,
		logger: log.New(os.Stdout, "Dao: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix),
	}, nil
}

func (d *daoImpl) SaveSummaries(results []*core.FileResult) error {
	const MaxOneRun = 500

	newDo := make([]*NmonSummaryDO, 0, len(results))
	oldDo := make([]*NmonSummaryDO, 0, len(results))
	for _, result := range results {
		do := &NmonSummaryDO{}
		err := d.db.First(do, &NmonSummaryDO{NmonFile: result.NmonFile}).Error

		do.apply(result)
		if err == nil {
			oldDo = append(oldDo, do)
		} else if err == gorm.ErrRecordNotFound {
			newDo = append(newDo, do)
		} else {
			return errors.Wrap(err, fmt.Sprintf("查询%s的汇总记录出错", result.NmonFile))
		}
	}

	d.logger.Printf("插入%d条新的汇总记录到数据库", len(newDo))
	for i := 0; i < len(newDo); i += MaxOneRun {
		end := i + MaxOneRun
		if end > len(newDo) {
			end = len(newDo)
		}
		err := d.db.Create(newDo[i:end]).Error
		if err != nil {
			return err
		}
	}

	d.logger.Printf("更新数据库%d条汇总记录", len(oldDo))
	for _, do := range oldDo {
		if err := d.db.Save(do).Error; err != nil {
			return errors.Wrap(err, fmt.Sprintf("更新%s的汇总记录出错", do.NmonFile))
		}
	}

	return nil
}

func (d *daoImpl) DB() *gorm.DB {
	return d.db
}
